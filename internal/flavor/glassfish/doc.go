// Package glassfish provides the GlassFish flavor.
//
// A GlassFish domain is created by running asadmin directly:
//
//	asadmin --interactive=false --user admin --passwordfile <home>/password.properties \
//	    create-domain --adminport 4848 --instanceport 8080 --domaindir <home> \
//	    --domainproperties jms.port=7676:orb.listener.port=3700:... cargo-domain
//
// The password file is written only when it does not exist yet. After the
// tool succeeds, <home>/<domain>/config/domain.xml is patched so every
// <config> declares com.sun.aas.javaRoot and uses it as java-home.
package glassfish
