// Package template defines the template engine seam used by the HTML map
// renderer and the template-backed address formatter, plus adapters for
// concrete engines (see the gotemplate subpackage).
package template
