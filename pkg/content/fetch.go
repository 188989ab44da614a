package content

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ipfs/go-cid"
)

// chunkSize is the read size used when reassembling a fetched stream.
const chunkSize = 64 << 10

// Kind selects how fetched bytes are presented.
type Kind int

const (
	KindText Kind = iota
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindImage:
		return "image"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "text", "txt":
		return KindText, nil
	case "image", "img":
		return KindImage, nil
	}
	return 0, fmt.Errorf("unknown content kind: %q", s)
}

// Image is a fetched blob ready for display.
type Image struct {
	Data        []byte
	ContentType string
}

func (i Image) Empty() bool {
	return len(i.Data) == 0
}

// DataURI encodes the image as a data: URI.
func (i Image) DataURI() string {
	if i.Empty() {
		return ""
	}
	return "data:" + i.ContentType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// ParseHash decodes a content hash as stored in the registry.
func ParseHash(hash string) (cid.Cid, error) {
	c, err := cid.Decode(strings.TrimSpace(hash))
	if err != nil {
		return cid.Undef, fmt.Errorf("decoding content hash %q: %w", hash, err)
	}
	return c, nil
}

// FetchBytes downloads the blob named by hash and reassembles the chunked
// stream into a single buffer.
func FetchBytes(ctx context.Context, s Store, hash string) ([]byte, error) {
	c, err := ParseHash(hash)
	if err != nil {
		return nil, err
	}

	body, err := s.Fetch(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", c, err)
	}
	defer body.Close()

	var chunks [][]byte
	var total int
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		buf := make([]byte, chunkSize)
		n, err := io.ReadFull(body, buf)
		if n > 0 {
			chunks = append(chunks, buf[:n])
			total += n
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", c, err)
		}
	}

	out := make([]byte, 0, total)
	for _, chunk := range chunks {
		out = append(out, chunk...)
	}
	log.Debugw("fetched blob", "cid", c, "size", total, "chunks", len(chunks))
	return out, nil
}

// FetchText downloads a blob and decodes it as UTF-8 text.
func FetchText(ctx context.Context, s Store, hash string) (string, error) {
	b, err := FetchBytes(ctx, s, hash)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FetchImage downloads a blob for display, sniffing its content type.
func FetchImage(ctx context.Context, s Store, hash string) (Image, error) {
	b, err := FetchBytes(ctx, s, hash)
	if err != nil {
		return Image{}, err
	}
	return Image{Data: b, ContentType: http.DetectContentType(b)}, nil
}
