// Package weblogic provides the WebLogic flavor.
//
// WebLogic domains are created offline with WLST. The create-domain.py
// template is rendered into the home directory and run with wlst.sh from
// the installation. The generated config.xml is not patched.
package weblogic
