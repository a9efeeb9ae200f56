package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/opencivic/archivist/core"
)

// Key prefixes for different data types
const (
	entryPrefix      = "kent"
	entryTitlePrefix = "kentt"
	entryDatePrefix  = "kentd"
	entryIDSeq       = "kentseq"
	docPrefix        = "sdoc"
	docExtPrefix     = "sdocx"
	docDatePrefix    = "sdocd"
	docIDSeq         = "sdocseq"
	chunkPrefix      = "dchk"
	versionPrefix    = "dver"
	statePrefix      = "dstg"
)

// makeEntryKey generates a key for a knowledge entry by ID.
func makeEntryKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", entryPrefix, id))
}

// makeEntryTitleKey generates a key for the active-title index.
// Format: prefix:title
func makeEntryTitleKey(title string) []byte {
	return []byte(entryTitlePrefix + ":" + title)
}

// makeEntryDateKey generates a composite key for the creation-date index.
// Format: prefix:timestamp:id, timestamps BigEndian so lexicographic order
// is chronological.
func makeEntryDateKey(createdAt time.Time, id core.ID) []byte {
	return makeTimeIDKey(entryDatePrefix, createdAt, id)
}

// makeDocKey generates a key for a source document by ID.
func makeDocKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", docPrefix, id))
}

// makeDocExtKey generates a key for the external-id index.
// Format: prefix:externalId
func makeDocExtKey(externalId string) []byte {
	return []byte(docExtPrefix + ":" + externalId)
}

// makeDocDateKey generates a composite key for the publication-date index.
func makeDocDateKey(publishedAt time.Time, id core.ID) []byte {
	return makeTimeIDKey(docDatePrefix, publishedAt, id)
}

// makeChunkKey generates a composite key for one document chunk.
// Format: prefix:docID:version:index, all BigEndian so iteration within a
// (document, version) prefix yields chunks in index order.
func makeChunkKey(documentId core.ID, version, index int) []byte {
	buf := makeChunkVersionPrefix(documentId, version)
	idx := make([]byte, 8)
	binary.BigEndian.PutUint64(idx, uint64(index))
	return append(buf, idx...)
}

// makeChunkVersionPrefix generates the key prefix shared by all chunks of
// one document version.
func makeChunkVersionPrefix(documentId core.ID, version int) []byte {
	prefix := []byte(chunkPrefix + ":")
	buf := make([]byte, len(prefix)+16)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(documentId))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(version))
	return buf
}

// makeVersionKey generates a key for a document version snapshot.
// Format: prefix:docID:version, BigEndian so iteration is version order.
func makeVersionKey(documentId core.ID, version int) []byte {
	prefix := []byte(versionPrefix + ":")
	buf := make([]byte, len(prefix)+16)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(documentId))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(version))
	return buf
}

// makeVersionPrefix generates the key prefix shared by all snapshots of one
// document.
func makeVersionPrefix(documentId core.ID) []byte {
	prefix := []byte(versionPrefix + ":")
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(documentId))
	return buf
}

// makeStateKey generates a key for a document's ingestion checkpoint.
func makeStateKey(documentId core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", statePrefix, documentId))
}

// makeTimeIDKey builds prefix:timestamp:id with BigEndian encoding so
// lexicographic sort works correctly.
func makeTimeIDKey(prefix string, ts time.Time, id core.ID) []byte {
	prefixBytes := []byte(prefix + ":")
	buf := make([]byte, len(prefixBytes)+16)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(ts.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}
