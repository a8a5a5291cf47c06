// Package port provides port number validation and port-offset arithmetic.
//
// Several instances of the same container can share a host by shifting
// every configured port by a fixed offset:
//
//	p, err := port.Apply(8080, 100) // 8180
//
// Both the raw port and the shifted result must fall inside MinPort-MaxPort.
package port
