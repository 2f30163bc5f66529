// Package manifest reads template fixtures from YAML documents.
//
// A document lists templates and may put them under a group, whose name is
// prefixed to each template name so Registered.GetGroup can select them:
//
//	group: case
//	templates:
//	  - name: upper
//	    template: "hello"
//	    expected: "HELLO"
//
// LoadFS walks a directory tree of such documents into a templatest.Registered.
package manifest
