package stl

import (
	"fmt"
	"strings"

	"trailrelief/entities"
)

// JSCAD renders the artifact's ribbon mesh as a JSCAD polyhedron
// declaration. When preview is true, every marker box is appended as
// a unioned polyhedron. Exact whitespace is not contractual — only
// that the numeric content round-trips to the same mesh.
func JSCAD(a *entities.Artifact, preview bool) string {
	var b strings.Builder
	b.WriteString("function main() {\n  return polyhedron({\n")
	writeJSCADArrays(&b, a.Mesh, "    ")
	b.WriteString("  })")

	if preview {
		for i, m := range a.MarkerMeshes {
			fmt.Fprintf(&b, "\n    .union(polyhedron({\n")
			writeJSCADArrays(&b, m, "      ")
			fmt.Fprintf(&b, "    })) // marker %d", i)
		}
	}
	b.WriteString(";\n}\n")
	return b.String()
}

func writeJSCADArrays(b *strings.Builder, mesh entities.Mesh, indent string) {
	fmt.Fprintf(b, "%spoints: [\n", indent)
	for _, v := range mesh.Vertices {
		fmt.Fprintf(b, "%s  [%g, %g, %g],\n", indent, v.X, v.Y, v.Z)
	}
	fmt.Fprintf(b, "%s],\n%sfaces: [\n", indent, indent)
	for _, tri := range mesh.Triangles {
		fmt.Fprintf(b, "%s  [%d, %d, %d],\n", indent, tri[0], tri[1], tri[2])
	}
	fmt.Fprintf(b, "%s],\n", indent)
}

// OpenSCAD renders the artifact's ribbon mesh, and every marker box, as
// one polyhedron() call each.
func OpenSCAD(a *entities.Artifact) string {
	var b strings.Builder
	writeOpenSCADPolyhedron(&b, a.Mesh)
	for i, m := range a.MarkerMeshes {
		fmt.Fprintf(&b, "// marker %d\n", i)
		writeOpenSCADPolyhedron(&b, m)
	}
	return b.String()
}

func writeOpenSCADPolyhedron(b *strings.Builder, mesh entities.Mesh) {
	b.WriteString("polyhedron(\n  points = [\n")
	for _, v := range mesh.Vertices {
		fmt.Fprintf(b, "    [%g, %g, %g],\n", v.X, v.Y, v.Z)
	}
	b.WriteString("  ],\n  faces = [\n")
	for _, tri := range mesh.Triangles {
		fmt.Fprintf(b, "    [%d, %d, %d],\n", tri[0], tri[1], tri[2])
	}
	b.WriteString("  ]\n);\n")
}
