// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package tree

import (
	"encoding/hex"
	"time"
)

// Checksum is a digest of a source file's bytes.
type Checksum struct {
	algorithm string
	value     []byte
}

func NewChecksum(algorithm string, value []byte) *Checksum {
	return &Checksum{algorithm: algorithm, value: nilIfEmpty(value)}
}

func (c *Checksum) Algorithm() string { return c.algorithm }
func (c *Checksum) Value() []byte     { return c.value }
func (c *Checksum) String() string    { return c.algorithm + ":" + hex.EncodeToString(c.value) }

// FileAttributes are the file system attributes of a source file at the
// time it was parsed. Times have millisecond precision.
type FileAttributes struct {
	creationTime     time.Time
	lastModifiedTime time.Time
	lastAccessTime   time.Time
	readable         bool
	writable         bool
	executable       bool
	size             int64
}

func NewFileAttributes(creationTime, lastModifiedTime, lastAccessTime time.Time,
	readable, writable, executable bool, size int64) *FileAttributes {
	return &FileAttributes{
		creationTime:     truncateMillis(creationTime),
		lastModifiedTime: truncateMillis(lastModifiedTime),
		lastAccessTime:   truncateMillis(lastAccessTime),
		readable:         readable,
		writable:         writable,
		executable:       executable,
		size:             size,
	}
}

// truncateMillis drops sub-millisecond precision and the monotonic clock
// reading so attributes survive a round trip through Unix milliseconds.
func truncateMillis(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return time.UnixMilli(t.UnixMilli()).UTC()
}

func (f *FileAttributes) CreationTime() time.Time     { return f.creationTime }
func (f *FileAttributes) LastModifiedTime() time.Time { return f.lastModifiedTime }
func (f *FileAttributes) LastAccessTime() time.Time   { return f.lastAccessTime }
func (f *FileAttributes) Readable() bool              { return f.readable }
func (f *FileAttributes) Writable() bool              { return f.writable }
func (f *FileAttributes) Executable() bool            { return f.executable }
func (f *FileAttributes) Size() int64                 { return f.size }

// UnicodeEscape records a \uXXXX escape in a literal's source so the
// literal can be reproduced exactly.
type UnicodeEscape struct {
	valueSourceIndex int32
	codePoint        string
}

func NewUnicodeEscape(valueSourceIndex int32, codePoint string) *UnicodeEscape {
	return &UnicodeEscape{valueSourceIndex: valueSourceIndex, codePoint: codePoint}
}

func (u *UnicodeEscape) ValueSourceIndex() int32 { return u.valueSourceIndex }
func (u *UnicodeEscape) CodePoint() string       { return u.codePoint }
