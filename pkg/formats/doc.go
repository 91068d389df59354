// Package formats provides exporters for tree meshes.
package formats
