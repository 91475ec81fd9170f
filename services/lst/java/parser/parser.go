// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package parser builds Java trees from source with tree-sitter.
//
// Every byte of the input lands in the tree: tokens are implied by the node
// kinds, and the text between them becomes the prefix or padding of the
// node that follows. Constructs the converter does not model are kept as
// Unknown nodes holding their exact source text.
package parser

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"go.opentelemetry.io/otel/attribute"

	"github.com/AleutianAI/lstsync/services/lst/java/tree"
)

// File size limits.
const (
	// DefaultMaxFileSize is the largest input Parse accepts (10MB).
	DefaultMaxFileSize = 10 * 1024 * 1024

	// WarnFileSize is the size above which a warning is logged (1MB).
	WarnFileSize = 1 * 1024 * 1024
)

var (
	// ErrFileTooLarge is returned when the input exceeds the size limit.
	ErrFileTooLarge = errors.New("file exceeds maximum size limit")

	// ErrInvalidContent is returned for input that is not UTF-8.
	ErrInvalidContent = errors.New("invalid content")

	// ErrUnsupported is the cause of a ParseError for a construct that
	// has no place in the tree, such as a statement outside any class.
	ErrUnsupported = errors.New("unsupported syntax")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func newID() uuid.UUID { return uuid.New() }

// ParseError locates a construct the parser could not place in the tree.
type ParseError struct {
	FilePath string

	// Line is 1-indexed; Column is 1-indexed in bytes.
	Line   int
	Column int

	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.FilePath, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// Option configures a Parser.
type Option func(*Parser)

// WithMaxFileSize sets the largest input Parse accepts. Non-positive
// values are ignored.
func WithMaxFileSize(bytes int64) Option {
	return func(p *Parser) {
		if bytes > 0 {
			p.maxFileSize = bytes
		}
	}
}

// WithLogger sets the logger for parse warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Parser converts Java source into a CompilationUnit.
//
// Thread Safety:
//
//	Safe for concurrent use. Each Parse call creates its own tree-sitter
//	parser.
type Parser struct {
	maxFileSize int64
	logger      *slog.Logger
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{
		maxFileSize: DefaultMaxFileSize,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result is the outcome of a parse.
type Result struct {
	CompilationUnit *tree.CompilationUnit

	// Unknown counts the subtrees kept as source text.
	Unknown int

	// SyntaxErrors reports whether tree-sitter had to recover from errors
	// in the input. Erroneous regions end up in Unknown nodes.
	SyntaxErrors bool
}

// Parse converts content into a CompilationUnit.
//
// Description:
//
//	The source is parsed with tree-sitter and converted in source order.
//	A leading byte order mark is recorded on the compilation unit and
//	excluded from the tree. The checksum covers the content as given.
//
// Inputs:
//   - ctx: Cancellation. Checked before and after tree-sitter runs.
//   - content: Java source. Must be UTF-8.
//   - sourcePath: Recorded on the compilation unit and in errors.
//
// Outputs:
//   - *Result: The tree and conversion statistics.
//   - error: ErrFileTooLarge, ErrInvalidContent, a context error, or a
//     *ParseError wrapping ErrUnsupported.
//
// Thread Safety:
//
//	Safe for concurrent use.
func (p *Parser) Parse(ctx context.Context, content []byte, sourcePath string) (*Result, error) {
	ctx, span := startParseSpan(ctx, sourcePath, len(content))
	defer span.End()
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse canceled before start: %w", err)
	}
	if int64(len(content)) > p.maxFileSize {
		recordParse(ctx, time.Since(start), 0, false)
		return nil, fmt.Errorf("%w: size %d exceeds limit %d", ErrFileTooLarge, len(content), p.maxFileSize)
	}
	if len(content) > WarnFileSize {
		p.logger.Warn("parsing large file",
			slog.String("file", sourcePath),
			slog.Int("size_bytes", len(content)))
	}

	sum := sha256.Sum256(content)
	checksum := tree.NewChecksum("SHA-256", sum[:])
	bom := bytes.HasPrefix(content, utf8BOM)
	if bom {
		content = content[len(utf8BOM):]
	}
	if !utf8.Valid(content) {
		recordParse(ctx, time.Since(start), 0, false)
		return nil, fmt.Errorf("%w: content is not valid UTF-8", ErrInvalidContent)
	}

	ts := sitter.NewParser()
	ts.SetLanguage(java.GetLanguage())
	syntax, err := ts.ParseCtx(ctx, nil, content)
	if err != nil {
		recordParse(ctx, time.Since(start), 0, false)
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer syntax.Close()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse canceled after tree-sitter: %w", err)
	}

	root := syntax.RootNode()
	b := &builder{raw: content, src: string(content)}
	cu, err := b.run(root, sourcePath, bom, checksum)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.FilePath = sourcePath
		}
		recordParse(ctx, time.Since(start), b.unknowns, false)
		span.RecordError(err)
		return nil, err
	}

	result := &Result{CompilationUnit: cu, Unknown: b.unknowns, SyntaxErrors: root.HasError()}
	if result.Unknown > 0 {
		p.logger.Debug("kept unsupported syntax as source text",
			slog.String("file", sourcePath),
			slog.Int("unknown", result.Unknown))
	}
	span.SetAttributes(
		attribute.Int("lst.unknown_count", result.Unknown),
		attribute.Bool("lst.syntax_errors", result.SyntaxErrors),
	)
	recordParse(ctx, time.Since(start), result.Unknown, true)
	return result, nil
}

// ParseFile reads and parses the file at path and records its attributes
// on the compilation unit.
func (p *Parser) ParseFile(ctx context.Context, path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	result, err := p.Parse(ctx, content, path)
	if err != nil {
		return nil, err
	}
	result.CompilationUnit = result.CompilationUnit.WithFileAttributes(FileAttributes(info))
	return result, nil
}

// FileAttributes derives the owner's permissions and the modification
// time from info. Creation and access times are not portable and stay
// zero.
func FileAttributes(info fs.FileInfo) *tree.FileAttributes {
	mode := info.Mode().Perm()
	return tree.NewFileAttributes(time.Time{}, info.ModTime(), time.Time{},
		mode&0o400 != 0, mode&0o200 != 0, mode&0o100 != 0, info.Size())
}

// run converts the syntax tree. A construct with no place in the tree
// aborts the whole conversion.
func (b *builder) run(root *sitter.Node, sourcePath string, bom bool, checksum *tree.Checksum) (cu *tree.CompilationUnit, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		bl, ok := r.(bail)
		if !ok {
			panic(r)
		}
		err = b.errorAt(bl)
	}()
	return b.compilationUnit(root, sourcePath, bom, checksum), nil
}

func (b *builder) errorAt(bl bail) *ParseError {
	offset := b.pos
	if bl.node != nil {
		offset = int(bl.node.StartByte())
	}
	if offset > len(b.src) {
		offset = len(b.src)
	}
	line := strings.Count(b.src[:offset], "\n") + 1
	column := offset - strings.LastIndexByte(b.src[:offset], '\n')
	return &ParseError{Line: line, Column: column, Message: bl.reason, Cause: ErrUnsupported}
}
