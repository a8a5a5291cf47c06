// Package patch applies ordered, guarded text replacements to generated
// configuration artifacts.
//
// Rules are data. Each Rule names the text to find, what to put in its
// place, whether to replace the first occurrence or all of them, and an
// optional Guard. Apply runs rules strictly in order against one buffer,
// so later rules see the output of earlier ones:
//
//	rules := []patch.Rule{
//	    {Name: "heap", Match: "-Xmx512m", Replace: "-Xmx1024m", Mode: patch.All},
//	    {Name: "java-home", Match: "<java-config ", Replace: "<java-config java-home='/opt/jdk' ",
//	        Guard: patch.IfAbsent(" java-home=")},
//	}
//	out, report := patch.Apply(text, rules, store)
//
// A rule whose guard is false is never applied. Rule sets are written so
// that applying them to their own output changes nothing.
package patch
