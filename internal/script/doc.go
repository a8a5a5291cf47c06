// Package script renders bootstrap scripts and command files from
// embedded templates.
//
// A template is addressed by its logical resource path and contains
// {{placeholder}} tokens named after configuration properties
// ({{berth.hostname}}). Every flavor shares the same renderer; a Variant
// only chooses the template and contributes the extra values its script
// needs:
//
//	type createDomain struct{ home string }
//
//	func (c createDomain) TemplatePath() string { return "weblogic/domain/create-domain.py" }
//	func (c createDomain) ContributeProperties(values map[string]string) {
//	    values["berth.weblogic.home"] = c.home
//	}
//
//	cmd := script.New(cfg, createDomain{home: "/opt/wls/wlserver"})
//	text, err := cmd.Render()
//
// Render never returns partial output. If any placeholder has no value
// the whole render fails with a template-resolution error listing every
// missing name.
package script
