// Package resources embeds the files berth ships with: bootstrap script
// templates and the administrative helper deployable.
//
// Resources are addressed by logical, slash-separated paths relative to
// the resource root ("weblogic/domain/create-domain.py", "berth-cpc.war"),
// never by filesystem paths.
package resources
