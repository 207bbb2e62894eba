package vectors

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mahdiidarabi/ed25519ref/pkg/ed25519ref"
)

// VectorParser defines the interface for reading vectors from various sources.
type VectorParser interface {
	// ParseVectors reads every vector in source.
	ParseVectors(source string) ([]*Vector, error)
}

// LineParser parses the colon-separated sign.input format.
type LineParser struct {
	Limit int // Stop after this many vectors (0 = no limit)
}

// ParseVectors parses vectors from a sign.input style file.
//
// Each non-empty line holds four hex fields, each followed by a colon:
//
//	seed||public_key : public_key : message : signature||message :
func (p *LineParser) ParseVectors(path string) ([]*Vector, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()
	return p.Parse(file)
}

// Parse reads sign.input lines from r.
func (p *LineParser) Parse(r io.Reader) ([]*Vector, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	vectors := make([]*Vector, 0)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		v.Line = lineNo
		vectors = append(vectors, v)
		if p.Limit > 0 && len(vectors) >= p.Limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}
	return vectors, nil
}

func parseLine(line string) (*Vector, error) {
	fields := strings.Split(line, ":")
	if len(fields) < 4 {
		return nil, fmt.Errorf("expected 4 fields, got %d", len(fields))
	}
	keys, err := decodeHex(fields[0])
	if err != nil {
		return nil, fmt.Errorf("failed to parse secret key: %w", err)
	}
	pub, err := decodeHex(fields[1])
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	msg, err := decodeHex(fields[2])
	if err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}
	signed, err := decodeHex(fields[3])
	if err != nil {
		return nil, fmt.Errorf("failed to parse signed message: %w", err)
	}

	if len(keys) != ed25519ref.SeedSize+ed25519ref.PublicKeySize {
		return nil, fmt.Errorf("secret key field is %d bytes, want %d", len(keys), ed25519ref.SeedSize+ed25519ref.PublicKeySize)
	}
	if !bytes.Equal(keys[ed25519ref.SeedSize:], pub) {
		return nil, fmt.Errorf("secret key field does not end with the public key")
	}
	if len(signed) != ed25519ref.SignatureSize+len(msg) {
		return nil, fmt.Errorf("signed message is %d bytes, want %d", len(signed), ed25519ref.SignatureSize+len(msg))
	}
	if !bytes.Equal(signed[ed25519ref.SignatureSize:], msg) {
		return nil, fmt.Errorf("signed message does not end with the message")
	}

	return &Vector{
		Seed:      keys[:ed25519ref.SeedSize],
		PublicKey: pub,
		Message:   msg,
		Signature: signed[:ed25519ref.SignatureSize],
	}, nil
}

// JSONParser parses vectors from JSON files.
type JSONParser struct {
	SeedField      string // Field name for seed (default: "seed")
	PublicKeyField string // Field name for public_key (default: "public_key")
	MessageField   string // Field name for message (default: "message")
	SignatureField string // Field name for signature (default: "signature")
}

// ParseVectors parses vectors from a JSON file.
//
// Expected format:
// [
//
//	{"seed": "hex", "public_key": "hex", "message": "hex", "signature": "hex"},
//	...
//
// ]
func (p *JSONParser) ParseVectors(jsonFile string) ([]*Vector, error) {
	file, err := os.Open(jsonFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()

	var items []map[string]interface{}
	if err := json.NewDecoder(file).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	seedField := fieldOr(p.SeedField, "seed")
	publicKeyField := fieldOr(p.PublicKeyField, "public_key")
	messageField := fieldOr(p.MessageField, "message")
	signatureField := fieldOr(p.SignatureField, "signature")

	vectors := make([]*Vector, 0, len(items))
	for i, item := range items {
		v := &Vector{Line: i + 1}
		var err error
		if v.Seed, err = hexField(item, seedField); err != nil {
			return nil, fmt.Errorf("vector %d: %w", i+1, err)
		}
		if v.PublicKey, err = hexField(item, publicKeyField); err != nil {
			return nil, fmt.Errorf("vector %d: %w", i+1, err)
		}
		if v.Message, err = hexField(item, messageField); err != nil {
			return nil, fmt.Errorf("vector %d: %w", i+1, err)
		}
		if v.Signature, err = hexField(item, signatureField); err != nil {
			return nil, fmt.Errorf("vector %d: %w", i+1, err)
		}
		vectors = append(vectors, v)
	}
	return vectors, nil
}

func fieldOr(name, def string) string {
	if name == "" {
		return def
	}
	return name
}

func hexField(item map[string]interface{}, field string) ([]byte, error) {
	val, ok := item[field]
	if !ok {
		return nil, fmt.Errorf("missing %s field", field)
	}
	s, ok := val.(string)
	if !ok {
		return nil, fmt.Errorf("%s field must be a hex string", field)
	}
	out, err := decodeHex(s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", field, err)
	}
	return out, nil
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	return hex.DecodeString(s)
}
