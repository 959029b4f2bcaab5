package loaders

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// createTestPLY writes a unit square in the z=0 plane as two triangles
func createTestPLY(t *testing.T, order binary.ByteOrder, includeNormals bool) []byte {
	t.Helper()
	var buf bytes.Buffer

	format := "binary_little_endian"
	if order == binary.BigEndian {
		format = "binary_big_endian"
	}
	buf.WriteString("ply\n")
	buf.WriteString("format " + format + " 1.0\n")
	buf.WriteString("comment generated for tests\n")
	buf.WriteString("element vertex 4\n")
	buf.WriteString("property float x\nproperty float y\nproperty float z\n")
	if includeNormals {
		buf.WriteString("property float nx\nproperty float ny\nproperty float nz\n")
	}
	buf.WriteString("property uchar red\n")
	buf.WriteString("element face 2\n")
	buf.WriteString("property list uchar int vertex_indices\n")
	buf.WriteString("property uchar flags\n")
	buf.WriteString("end_header\n")

	vertices := [][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	for _, v := range vertices {
		binary.Write(&buf, order, v)
		if includeNormals {
			binary.Write(&buf, order, [3]float32{0, 0, 1})
		}
		binary.Write(&buf, order, uint8(200))
	}

	for _, f := range [][3]int32{{0, 1, 2}, {0, 2, 3}} {
		binary.Write(&buf, order, uint8(3))
		binary.Write(&buf, order, f)
		binary.Write(&buf, order, uint8(7))
	}
	return buf.Bytes()
}

func checkSquare(t *testing.T, mesh *Mesh) {
	t.Helper()
	expectedVertices := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(1, 1, 0),
		core.NewVec3(0, 1, 0),
	}
	if len(mesh.Positions) != len(expectedVertices) {
		t.Fatalf("Expected %d vertices, got %d", len(expectedVertices), len(mesh.Positions))
	}
	for i, expected := range expectedVertices {
		if mesh.Positions[i] != expected {
			t.Errorf("Vertex %d: expected %v, got %v", i, expected, mesh.Positions[i])
		}
	}

	expectedIndices := []int{0, 1, 2, 0, 2, 3}
	if len(mesh.Indices) != len(expectedIndices) {
		t.Fatalf("Expected %d indices, got %d", len(expectedIndices), len(mesh.Indices))
	}
	for i, expected := range expectedIndices {
		if mesh.Indices[i] != expected {
			t.Errorf("Index %d: expected %d, got %d", i, expected, mesh.Indices[i])
		}
	}
}

func TestReadPLY_Binary(t *testing.T) {
	tests := []struct {
		name  string
		order binary.ByteOrder
	}{
		{"little endian", binary.LittleEndian},
		{"big endian", binary.BigEndian},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh, err := ReadPLY(bytes.NewReader(createTestPLY(t, tt.order, false)))
			if err != nil {
				t.Fatalf("Failed to read PLY: %v", err)
			}
			checkSquare(t, mesh)
			if len(mesh.Normals) != 0 {
				t.Errorf("Expected no normals, got %d", len(mesh.Normals))
			}
		})
	}
}

func TestLoadPLY_WithNormals(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "square.ply")
	if err := os.WriteFile(testFile, createTestPLY(t, binary.LittleEndian, true), 0644); err != nil {
		t.Fatalf("Failed to create test PLY file: %v", err)
	}

	mesh, err := LoadPLY(testFile)
	if err != nil {
		t.Fatalf("Failed to load PLY: %v", err)
	}
	checkSquare(t, mesh)
	if len(mesh.Normals) != 4 {
		t.Fatalf("Expected 4 normals, got %d", len(mesh.Normals))
	}
	for i, n := range mesh.Normals {
		if n != core.NewVec3(0, 0, 1) {
			t.Errorf("Normal %d: expected (0,0,1), got %v", i, n)
		}
	}
	if mesh.NumTriangles() != 2 {
		t.Errorf("Expected 2 triangles, got %d", mesh.NumTriangles())
	}
	if b := mesh.Bounds(); b.Min != core.NewVec3(0, 0, 0) || b.Max != core.NewVec3(1, 1, 0) {
		t.Errorf("Expected unit square bounds, got %v", b)
	}
}

func TestReadPLY_ASCIIQuadAndTexCoords(t *testing.T) {
	input := `ply
format ascii 1.0
element vertex 4
property double x
property double y
property double z
property float s
property float t
element face 1
property list uchar uint vertex_indices
end_header
0 0 0 0 0
1 0 0 1 0
1 1 0 1 1
0 1 0 0 1
4 0 1 2 3
`
	mesh, err := ReadPLY(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to read PLY: %v", err)
	}
	checkSquare(t, mesh)
	if len(mesh.TexCoords) != 4 || mesh.TexCoords[2] != core.NewVec2(1, 1) {
		t.Errorf("Expected texcoords from s/t, got %v", mesh.TexCoords)
	}
}

func TestReadPLY_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no magic", "plx\nformat ascii 1.0\nend_header\n"},
		{"truncated header", "ply\nformat ascii 1.0\nelement vertex 1\n"},
		{"bad format", "ply\nformat binary_middle_endian 1.0\nend_header\n"},
		{"missing coordinates", "ply\nformat ascii 1.0\nelement vertex 1\nproperty float x\nend_header\n1\n"},
		{"truncated body", "ply\nformat ascii 1.0\nelement vertex 2\nproperty float x\nproperty float y\nproperty float z\nend_header\n0 0 0\n"},
		{"index out of range", "ply\nformat ascii 1.0\nelement vertex 3\nproperty float x\nproperty float y\nproperty float z\n" +
			"element face 1\nproperty list uchar int vertex_indices\nend_header\n0 0 0\n1 0 0\n0 1 0\n3 0 1 9\n"},
		{"huge vertex count", "ply\nformat ascii 1.0\nelement vertex 4000000000000000000\nproperty float x\nproperty float y\nproperty float z\nend_header\n0 0 0\n"},
		{"huge face count", "ply\nformat binary_little_endian 1.0\nelement vertex 0\nproperty float x\nproperty float y\nproperty float z\n" +
			"element face 4000000000000000000\nproperty list uchar int vertex_indices\nend_header\n"},
		{"bad property type", "ply\nformat ascii 1.0\nelement vertex 1\nproperty quaternion x\nend_header\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadPLY(strings.NewReader(tt.input))
			if !errors.Is(err, ErrInvalidPLY) {
				t.Errorf("Expected ErrInvalidPLY, got %v", err)
			}
		})
	}
}

func TestLoadPLY_MissingFile(t *testing.T) {
	_, err := LoadPLY(filepath.Join(t.TempDir(), "missing.ply"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped os.ErrNotExist, got %v", err)
	}
}
