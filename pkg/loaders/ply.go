package loaders

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/log"
)

var logger = log.New("loaders")

// ErrInvalidPLY is returned for malformed or unsupported PLY input
var ErrInvalidPLY = errors.New("invalid PLY")

// maxPrealloc caps slice preallocation from header counts; larger meshes grow by append
const maxPrealloc = 1 << 16

// Mesh is an indexed triangle mesh. Normals and TexCoords are either empty
// or hold one entry per position.
type Mesh struct {
	Positions []core.Vec3
	Normals   []core.Vec3
	TexCoords []core.Vec2
	Indices   []int // 3 per triangle
}

// NumTriangles returns the number of triangles in the mesh
func (m *Mesh) NumTriangles() int {
	return len(m.Indices) / 3
}

// Bounds returns the bounding box of the vertex positions
func (m *Mesh) Bounds() core.AABB {
	return core.NewAABBFromPoints(m.Positions...)
}

// plyProperty is one property line of the header
type plyProperty struct {
	name     string
	typ      string // scalar type, or the item type of a list
	isList   bool
	countTyp string
}

// plyElement is one element block of the header
type plyElement struct {
	name  string
	count int
	props []plyProperty
}

type plyHeader struct {
	format   string
	elements []plyElement
}

// scalarReader reads the next scalar of a PLY type from the body
type scalarReader interface {
	scalar(typ string) (float64, error)
}

// LoadPLY loads a triangle mesh from an ASCII or binary PLY file
func LoadPLY(filename string) (*Mesh, error) {
	start := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	mesh, err := ReadPLY(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filename, err)
	}

	logger.Infof("loaded %s: %d vertices, %d triangles in %v",
		filename, len(mesh.Positions), mesh.NumTriangles(), time.Since(start))
	return mesh, nil
}

// ReadPLY parses a PLY stream. Polygons are fan-triangulated.
func ReadPLY(r io.Reader) (*Mesh, error) {
	br := bufio.NewReaderSize(r, 1<<20)

	header, err := parsePLYHeader(br)
	if err != nil {
		return nil, err
	}

	var body scalarReader
	switch header.format {
	case "ascii":
		scanner := bufio.NewScanner(br)
		scanner.Split(bufio.ScanWords)
		body = &asciiReader{scanner: scanner}
	case "binary_little_endian":
		body = &binaryReader{r: br, order: binary.LittleEndian}
	case "binary_big_endian":
		body = &binaryReader{r: br, order: binary.BigEndian}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidPLY, header.format)
	}

	mesh := &Mesh{}
	vertexCount := 0
	for _, element := range header.elements {
		switch element.name {
		case "vertex":
			vertexCount = element.count
			err = readVertices(body, element, mesh)
		case "face":
			err = readFaces(body, element, mesh)
		default:
			err = skipElement(body, element)
		}
		if err != nil {
			return nil, err
		}
	}

	for _, index := range mesh.Indices {
		if index < 0 || index >= vertexCount {
			return nil, fmt.Errorf("%w: vertex index %d out of range [0,%d)", ErrInvalidPLY, index, vertexCount)
		}
	}
	return mesh, nil
}

func parsePLYHeader(br *bufio.Reader) (*plyHeader, error) {
	header := &plyHeader{}

	magic, err := br.ReadString('\n')
	if err != nil || strings.TrimSpace(magic) != "ply" {
		return nil, fmt.Errorf("%w: missing ply magic", ErrInvalidPLY)
	}

	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("%w: header ended before end_header", ErrInvalidPLY)
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "end_header":
			return header, nil
		case "comment", "obj_info":
		case "format":
			if len(parts) < 3 {
				return nil, fmt.Errorf("%w: bad format line %q", ErrInvalidPLY, strings.TrimSpace(line))
			}
			header.format = parts[1]
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("%w: bad element line %q", ErrInvalidPLY, strings.TrimSpace(line))
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("%w: invalid element count %q", ErrInvalidPLY, parts[2])
			}
			header.elements = append(header.elements, plyElement{name: parts[1], count: count})
		case "property":
			if len(header.elements) == 0 {
				return nil, fmt.Errorf("%w: property before element", ErrInvalidPLY)
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, err
			}
			current := &header.elements[len(header.elements)-1]
			current.props = append(current.props, prop)
		default:
			return nil, fmt.Errorf("%w: unknown header keyword %q", ErrInvalidPLY, parts[0])
		}
	}
}

func parsePLYProperty(parts []string) (plyProperty, error) {
	if len(parts) >= 4 && parts[0] == "list" {
		prop := plyProperty{isList: true, countTyp: parts[1], typ: parts[2], name: parts[3]}
		if typeSize(prop.countTyp) == 0 || typeSize(prop.typ) == 0 {
			return plyProperty{}, fmt.Errorf("%w: unsupported list type in %v", ErrInvalidPLY, parts)
		}
		return prop, nil
	}
	if len(parts) == 2 && typeSize(parts[0]) != 0 {
		return plyProperty{typ: parts[0], name: parts[1]}, nil
	}
	return plyProperty{}, fmt.Errorf("%w: invalid property %v", ErrInvalidPLY, parts)
}

func readVertices(body scalarReader, element plyElement, mesh *Mesh) error {
	index := make(map[string]int, len(element.props))
	for i, prop := range element.props {
		index[prop.name] = i
	}
	has := func(names ...string) bool {
		for _, name := range names {
			if _, ok := index[name]; !ok {
				return false
			}
		}
		return true
	}
	if !has("x", "y", "z") {
		return fmt.Errorf("%w: vertex element without x, y, z", ErrInvalidPLY)
	}
	hasNormals := has("nx", "ny", "nz")
	uName, vName := "u", "v"
	if !has(uName, vName) {
		uName, vName = "s", "t"
	}
	hasUV := has(uName, vName)

	capacity := min(element.count, maxPrealloc)
	mesh.Positions = make([]core.Vec3, 0, capacity)
	if hasNormals {
		mesh.Normals = make([]core.Vec3, 0, capacity)
	}
	if hasUV {
		mesh.TexCoords = make([]core.Vec2, 0, capacity)
	}

	values := make([]float64, len(element.props))
	for v := 0; v < element.count; v++ {
		for i, prop := range element.props {
			if prop.isList {
				if err := skipList(body, prop); err != nil {
					return fmt.Errorf("%w: vertex %d: %v", ErrInvalidPLY, v, err)
				}
				continue
			}
			value, err := body.scalar(prop.typ)
			if err != nil {
				return fmt.Errorf("%w: vertex %d: %v", ErrInvalidPLY, v, err)
			}
			values[i] = value
		}

		mesh.Positions = append(mesh.Positions, core.NewVec3(values[index["x"]], values[index["y"]], values[index["z"]]))
		if hasNormals {
			mesh.Normals = append(mesh.Normals, core.NewVec3(values[index["nx"]], values[index["ny"]], values[index["nz"]]))
		}
		if hasUV {
			mesh.TexCoords = append(mesh.TexCoords, core.NewVec2(values[index[uName]], values[index[vName]]))
		}
	}
	return nil
}

func readFaces(body scalarReader, element plyElement, mesh *Mesh) error {
	mesh.Indices = make([]int, 0, 3*min(element.count, maxPrealloc))
	polygon := make([]int, 0, 4)

	for f := 0; f < element.count; f++ {
		for _, prop := range element.props {
			if !prop.isList || (prop.name != "vertex_indices" && prop.name != "vertex_index") {
				var err error
				if prop.isList {
					err = skipList(body, prop)
				} else {
					_, err = body.scalar(prop.typ)
				}
				if err != nil {
					return fmt.Errorf("%w: face %d: %v", ErrInvalidPLY, f, err)
				}
				continue
			}

			count, err := body.scalar(prop.countTyp)
			if err != nil {
				return fmt.Errorf("%w: face %d: %v", ErrInvalidPLY, f, err)
			}
			if count < 3 {
				return fmt.Errorf("%w: face %d has %v vertices", ErrInvalidPLY, f, count)
			}
			polygon = polygon[:0]
			for i := 0; i < int(count); i++ {
				value, err := body.scalar(prop.typ)
				if err != nil {
					return fmt.Errorf("%w: face %d: %v", ErrInvalidPLY, f, err)
				}
				polygon = append(polygon, int(value))
			}
			for i := 1; i+1 < len(polygon); i++ {
				mesh.Indices = append(mesh.Indices, polygon[0], polygon[i], polygon[i+1])
			}
		}
	}
	return nil
}

func skipElement(body scalarReader, element plyElement) error {
	for e := 0; e < element.count; e++ {
		for _, prop := range element.props {
			var err error
			if prop.isList {
				err = skipList(body, prop)
			} else {
				_, err = body.scalar(prop.typ)
			}
			if err != nil {
				return fmt.Errorf("%w: %s %d: %v", ErrInvalidPLY, element.name, e, err)
			}
		}
	}
	return nil
}

func skipList(body scalarReader, prop plyProperty) error {
	count, err := body.scalar(prop.countTyp)
	if err != nil {
		return err
	}
	for i := 0; i < int(count); i++ {
		if _, err := body.scalar(prop.typ); err != nil {
			return err
		}
	}
	return nil
}

// typeSize returns the byte size of a PLY scalar type, or 0 if unknown
func typeSize(typ string) int {
	switch typ {
	case "char", "int8", "uchar", "uint8":
		return 1
	case "short", "int16", "ushort", "uint16":
		return 2
	case "int", "int32", "uint", "uint32", "float", "float32":
		return 4
	case "double", "float64":
		return 8
	}
	return 0
}

type asciiReader struct {
	scanner *bufio.Scanner
}

func (a *asciiReader) scalar(typ string) (float64, error) {
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.ParseFloat(a.scanner.Text(), 64)
}

type binaryReader struct {
	r     *bufio.Reader
	order binary.ByteOrder
	buf   [8]byte
}

func (b *binaryReader) scalar(typ string) (float64, error) {
	size := typeSize(typ)
	if size == 0 {
		return 0, fmt.Errorf("unsupported type %q", typ)
	}
	buf := b.buf[:size]
	if _, err := io.ReadFull(b.r, buf); err != nil {
		return 0, err
	}

	switch typ {
	case "char", "int8":
		return float64(int8(buf[0])), nil
	case "uchar", "uint8":
		return float64(buf[0]), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(buf))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(buf)), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(buf))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(buf)), nil
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(buf))), nil
	default:
		return math.Float64frombits(b.order.Uint64(buf)), nil
	}
}
