package deployable

import "testing"

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"war", KindWAR, false},
		{"WAR", KindWAR, false},
		{" ear ", KindEAR, false},
		{"bundle", KindBundle, false},
		{"jar", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDeployable_WebContext(t *testing.T) {
	tests := []struct {
		d    Deployable
		want string
	}{
		{Deployable{Kind: KindWAR, Path: "/apps/shop.war"}, "shop"},
		{Deployable{Kind: KindWAR, Path: "/apps/shop.war", Context: "/store"}, "store"},
		{Deployable{Kind: KindWAR, Path: "berth-cpc.war"}, "berth-cpc"},
	}

	for _, tt := range tests {
		if got := tt.d.WebContext(); got != tt.want {
			t.Errorf("WebContext(%s) = %q, want %q", tt.d.Path, got, tt.want)
		}
	}
}

func TestList_AppendPreservesOrder(t *testing.T) {
	var l List
	l.Append(Deployable{Kind: KindWAR, Path: "a.war"})
	l.Append(Deployable{Kind: KindEAR, Path: "b.ear"})
	l.Append(Deployable{Kind: KindWAR, Path: "helper.war"})

	items := l.Items()
	if len(items) != 3 || l.Len() != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	want := []string{"a.war", "b.ear", "helper.war"}
	for i, w := range want {
		if items[i].Path != w {
			t.Errorf("items[%d] = %q, want %q", i, items[i].Path, w)
		}
	}

	// Items returns a copy
	items[0].Path = "changed"
	if l.Items()[0].Path != "a.war" {
		t.Error("Items should return a copy")
	}
}
