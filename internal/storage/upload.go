package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	KindLogo   = "logo"
	KindBanner = "banner"
	KindBlog   = "blog"
	KindRoom   = "room"

	mb = 1 << 20
)

// ErrRejected marks uploads refused by policy; the message is safe to show to clients.
var ErrRejected = errors.New("upload rejected")

var uploads = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "hotel_portal",
	Name:      "uploads_total",
	Help:      "Uploaded files by kind and result.",
}, []string{"kind", "result"})

// Policy limits what may be uploaded for one kind of image.
type Policy struct {
	MaxSize int64
	Types   []string
}

var policies = map[string]Policy{
	KindLogo:   {MaxSize: 5 * mb, Types: []string{"image/png", "image/jpeg", "image/webp", "image/svg+xml"}},
	KindBanner: {MaxSize: 10 * mb, Types: []string{"image/png", "image/jpeg", "image/webp"}},
	KindBlog:   {MaxSize: 5 * mb, Types: []string{"image/png", "image/jpeg", "image/webp"}},
	KindRoom:   {MaxSize: 5 * mb, Types: []string{"image/png", "image/jpeg", "image/webp"}},
}

// PolicyFor returns the policy of kind. An empty kind means a blog image.
func PolicyFor(kind string) (Policy, error) {
	if kind == "" {
		kind = KindBlog
	}

	p, ok := policies[kind]
	if !ok {
		return Policy{}, fmt.Errorf("%w: unknown upload kind %q", ErrRejected, kind)
	}

	return p, nil
}

// Check validates size and content type against the policy.
func (p Policy) Check(size int64, contentType string) error {
	allowed := false
	for _, t := range p.Types {
		if t == contentType {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: file type %q is not allowed", ErrRejected, contentType)
	}

	if size > p.MaxSize {
		return fmt.Errorf("%w: file too large, maximum size is %dMB", ErrRejected, p.MaxSize/mb)
	}

	return nil
}

var extensions = map[string]string{
	"image/png":     "png",
	"image/jpeg":    "jpg",
	"image/webp":    "webp",
	"image/svg+xml": "svg",
}

// FileName builds "<kind>-<unixMillis>-<uuid>.<ext>". The extension follows the
// validated content type, never the client's file name.
func FileName(kind, contentType string, now time.Time) string {
	ext, ok := extensions[contentType]
	if !ok {
		ext = "bin"
	}

	return fmt.Sprintf("%s-%d-%s.%s", kind, now.UnixMilli(), uuid.NewString(), ext)
}

// ContentType normalizes a declared MIME type and sniffs one when the client sent none.
func ContentType(declared string, head []byte) string {
	t, _, err := mime.ParseMediaType(declared)
	if err != nil || t == "" || t == "application/octet-stream" {
		t, _, _ = mime.ParseMediaType(http.DetectContentType(head))
	}

	if t == "image/jpg" {
		return "image/jpeg"
	}

	return t
}

type UploadRequest struct {
	Kind        string
	ContentType string
	Size        int64
	Body        io.Reader
}

type Upload struct {
	URL      string `json:"url"`
	FileName string `json:"filename"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
	Storage  string `json:"storage"`
}

// Uploader applies upload policies in front of a Store.
type Uploader struct {
	store Store
	now   func() time.Time
}

func NewUploader(store Store) *Uploader {
	return &Uploader{store: store, now: time.Now}
}

func (u *Uploader) Upload(ctx context.Context, req UploadRequest) (*Upload, error) {
	kind := req.Kind
	if kind == "" {
		kind = KindBlog
	}

	res, err := u.upload(ctx, kind, req)
	result := "ok"
	switch {
	case errors.Is(err, ErrRejected):
		result = "rejected"
	case err != nil:
		result = "error"
	}
	uploads.WithLabelValues(kind, result).Inc()

	return res, err
}

func (u *Uploader) upload(ctx context.Context, kind string, req UploadRequest) (*Upload, error) {
	policy, err := PolicyFor(kind)
	if err != nil {
		return nil, err
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(req.Body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]

	contentType := ContentType(req.ContentType, head)
	if err := policy.Check(req.Size, contentType); err != nil {
		return nil, err
	}

	// the declared size may lie, so the body is bounded as well
	body := &limitedReader{r: io.MultiReader(bytes.NewReader(head), req.Body), max: policy.MaxSize}

	name := FileName(kind, contentType, u.now())
	url, err := u.store.Save(ctx, name, contentType, body)
	if body.err != nil {
		return nil, body.err
	} else if err != nil {
		return nil, fmt.Errorf("save %s: %w", name, err)
	}

	return &Upload{
		URL:      url,
		FileName: name,
		Size:     body.n,
		Type:     contentType,
		Storage:  u.store.Name(),
	}, nil
}

// limitedReader fails the read that goes past max bytes.
type limitedReader struct {
	r   io.Reader
	max int64
	n   int64
	err error
}

func (l *limitedReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.n += int64(n)
	if l.n > l.max {
		l.err = fmt.Errorf("%w: file too large, maximum size is %dMB", ErrRejected, l.max/mb)
		return n, l.err
	}

	return n, err
}
