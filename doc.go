// Package templatest registers named string templates for parametrized tests.
// Each template pairs an input string with its expected transformation and is
// looked up by name or by group prefix through Registered.
package templatest
