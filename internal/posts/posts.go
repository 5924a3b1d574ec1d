// Package posts serves blog content from a directory of Markdown files
// with YAML front matter, rendering bodies to HTML.
package posts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrPostNotFound is returned when no post matches the requested slug.
var ErrPostNotFound = errors.New("post not found")

// frontMatterDelim separates the YAML header from the Markdown body.
const frontMatterDelim = "---"

// PostMeta is the listing-level metadata of one post.
type PostMeta struct {
	// Slug is the URL-safe identifier, derived from the file name.
	Slug string `yaml:"-"`
	// Title is the post headline.
	Title string `yaml:"title"`
	// Summary is the short teaser shown in listings.
	Summary string `yaml:"summary"`
	// Date is the publication date in ISO form (YYYY-MM-DD).
	Date string `yaml:"date"`
}

// Post is a fully loaded post: metadata plus the rendered HTML body.
type Post struct {
	Meta PostMeta
	Body string
}

// Source is the content capability consumed by the blog views.
type Source interface {
	// ListPosts returns metadata for all posts, newest first.
	ListPosts(ctx context.Context) ([]PostMeta, error)
	// GetPost loads and renders a single post by slug.
	GetPost(ctx context.Context, slug string) (*Post, error)
}

// DirSource reads posts from <dir>/<slug>.md files.
type DirSource struct {
	dir string
	md  goldmark.Markdown
	log *zap.Logger
}

// NewDirSource creates a source over the given directory.
func NewDirSource(dir string, log *zap.Logger) *DirSource {
	if log == nil {
		log = zap.NewNop()
	}
	return &DirSource{
		dir: dir,
		md:  goldmark.New(goldmark.WithExtensions(extension.GFM)),
		log: log,
	}
}

// ListPosts scans the directory for .md files and returns their metadata
// sorted by date descending, then slug, so the newest post leads. A post
// that fails to load is skipped with a warning; one corrupt file must not
// blank the whole index.
func (s *DirSource) ListPosts(ctx context.Context) ([]PostMeta, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	files, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read posts dir: %w", err)
	}

	var metas []PostMeta
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".md") {
			continue
		}
		slug := strings.TrimSuffix(f.Name(), ".md")
		meta, _, err := s.read(slug)
		if err != nil {
			s.log.Warn("skipping unreadable post",
				zap.String("slug", slug), zap.Error(err))
			continue
		}
		metas = append(metas, meta)
	}

	sort.Slice(metas, func(i, j int) bool {
		if metas[i].Date != metas[j].Date {
			return metas[i].Date > metas[j].Date
		}
		return metas[i].Slug < metas[j].Slug
	})
	return metas, nil
}

// GetPost loads one post and renders its Markdown body to HTML.
func (s *DirSource) GetPost(ctx context.Context, slug string) (*Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	meta, body, err := s.read(slug)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(body), &buf); err != nil {
		return nil, fmt.Errorf("render post %q: %w", slug, err)
	}
	return &Post{Meta: meta, Body: buf.String()}, nil
}

// read loads a post file and splits front matter from the body.
func (s *DirSource) read(slug string) (PostMeta, string, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, slug+".md"))
	if err != nil {
		if os.IsNotExist(err) {
			return PostMeta{}, "", fmt.Errorf("%w: %s", ErrPostNotFound, slug)
		}
		return PostMeta{}, "", fmt.Errorf("read post %q: %w", slug, err)
	}

	meta := PostMeta{Slug: slug}
	body := string(raw)
	if header, rest, ok := splitFrontMatter(body); ok {
		if err := yaml.Unmarshal([]byte(header), &meta); err != nil {
			return PostMeta{}, "", fmt.Errorf("parse front matter of %q: %w", slug, err)
		}
		meta.Slug = slug
		body = rest
	}
	if meta.Title == "" {
		meta.Title = slug
	}
	return meta, body, nil
}

// splitFrontMatter extracts the YAML block between the leading pair of
// "---" lines. Files without front matter are returned unchanged.
func splitFrontMatter(content string) (header, body string, ok bool) {
	trimmed := strings.TrimPrefix(content, "\ufeff")
	if !strings.HasPrefix(trimmed, frontMatterDelim) {
		return "", content, false
	}
	rest := strings.TrimPrefix(trimmed, frontMatterDelim)
	rest = strings.TrimPrefix(rest, "\r\n")
	rest = strings.TrimPrefix(rest, "\n")

	idx := strings.Index(rest, "\n"+frontMatterDelim)
	if idx < 0 {
		return "", content, false
	}
	header = rest[:idx]
	body = rest[idx+len("\n"+frontMatterDelim):]
	body = strings.TrimPrefix(body, "\r\n")
	body = strings.TrimPrefix(body, "\n")
	return header, body, true
}
