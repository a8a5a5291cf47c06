// Package deployable describes artifacts scheduled for deployment into a
// container after its domain has been bootstrapped.
//
// A Deployable pairs a Kind (war, ear, ejb, rar, bundle, file) with the
// location of the artifact on disk. A List keeps deployables in the order
// they were added; entries are only ever appended, so deployables declared
// by the user keep their relative order when bootstrap adds the
// administrative helper after them.
package deployable
