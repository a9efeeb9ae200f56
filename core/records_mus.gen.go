// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	slice1HyWBZmogvWW8jxXΔVraCwΞΞ = ord.NewSliceSer[CaptionSegment](CaptionSegmentMUS)
	sliceSp0r3eHDIyTRZjgDYY18EAΞΞ = ord.NewSliceSer[string](ord.String)
	slicehf5w7fsWbFupn2EW8TqoCQΞΞ = ord.NewSliceSer[float32](varint.Float32)
	sliceΣnZVUVxppxgmaH2PUyifΔwΞΞ = ord.NewSliceSer[DocumentChunk](DocumentChunkMUS)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var EntryStateMUS = entryStateMUS{}

type entryStateMUS struct{}

func (s entryStateMUS) Marshal(v EntryState, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s entryStateMUS) Unmarshal(bs []byte) (v EntryState, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = EntryState(tmp)
	return
}

func (s entryStateMUS) Size(v EntryState) (size int) {
	return varint.Int.Size(int(v))
}

func (s entryStateMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var IngestStatusMUS = ingestStatusMUS{}

type ingestStatusMUS struct{}

func (s ingestStatusMUS) Marshal(v IngestStatus, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s ingestStatusMUS) Unmarshal(bs []byte) (v IngestStatus, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = IngestStatus(tmp)
	return
}

func (s ingestStatusMUS) Size(v IngestStatus) (size int) {
	return varint.Int.Size(int(v))
}

func (s ingestStatusMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var KnowledgeEntryMUS = knowledgeEntryMUS{}

type knowledgeEntryMUS struct{}

func (s knowledgeEntryMUS) Marshal(v KnowledgeEntry, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Contents, bs[n:])
	n += ord.String.Marshal(v.Category, bs[n:])
	n += sliceSp0r3eHDIyTRZjgDYY18EAΞΞ.Marshal(v.Tags, bs[n:])
	n += ord.String.Marshal(v.Source, bs[n:])
	n += slicehf5w7fsWbFupn2EW8TqoCQΞΞ.Marshal(v.Vector, bs[n:])
	n += EntryStateMUS.Marshal(v.State, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.CreatedAt, bs[n:])
}

func (s knowledgeEntryMUS) Unmarshal(bs []byte) (v KnowledgeEntry, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Contents, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Category, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Tags, n1, err = sliceSp0r3eHDIyTRZjgDYY18EAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Source, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = slicehf5w7fsWbFupn2EW8TqoCQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.State, n1, err = EntryStateMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s knowledgeEntryMUS) Size(v KnowledgeEntry) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Contents)
	size += ord.String.Size(v.Category)
	size += sliceSp0r3eHDIyTRZjgDYY18EAΞΞ.Size(v.Tags)
	size += ord.String.Size(v.Source)
	size += slicehf5w7fsWbFupn2EW8TqoCQΞΞ.Size(v.Vector)
	size += EntryStateMUS.Size(v.State)
	return size + raw.TimeUnixMicro.Size(v.CreatedAt)
}

func (s knowledgeEntryMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceSp0r3eHDIyTRZjgDYY18EAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicehf5w7fsWbFupn2EW8TqoCQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = EntryStateMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var RecapMUS = recapMUS{}

type recapMUS struct{}

func (s recapMUS) Marshal(v Recap, bs []byte) (n int) {
	n = ord.String.Marshal(v.Summary, bs)
	n += ord.String.Marshal(v.Article, bs[n:])
	n += sliceSp0r3eHDIyTRZjgDYY18EAΞΞ.Marshal(v.Decisions, bs[n:])
	n += sliceSp0r3eHDIyTRZjgDYY18EAΞΞ.Marshal(v.Topics, bs[n:])
	return n + sliceSp0r3eHDIyTRZjgDYY18EAΞΞ.Marshal(v.PublicComments, bs[n:])
}

func (s recapMUS) Unmarshal(bs []byte) (v Recap, n int, err error) {
	v.Summary, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Article, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Decisions, n1, err = sliceSp0r3eHDIyTRZjgDYY18EAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Topics, n1, err = sliceSp0r3eHDIyTRZjgDYY18EAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PublicComments, n1, err = sliceSp0r3eHDIyTRZjgDYY18EAΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s recapMUS) Size(v Recap) (size int) {
	size = ord.String.Size(v.Summary)
	size += ord.String.Size(v.Article)
	size += sliceSp0r3eHDIyTRZjgDYY18EAΞΞ.Size(v.Decisions)
	size += sliceSp0r3eHDIyTRZjgDYY18EAΞΞ.Size(v.Topics)
	return size + sliceSp0r3eHDIyTRZjgDYY18EAΞΞ.Size(v.PublicComments)
}

func (s recapMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceSp0r3eHDIyTRZjgDYY18EAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceSp0r3eHDIyTRZjgDYY18EAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceSp0r3eHDIyTRZjgDYY18EAΞΞ.Skip(bs[n:])
	n += n1
	return
}

var SourceDocumentMUS = sourceDocumentMUS{}

type sourceDocumentMUS struct{}

func (s sourceDocumentMUS) Marshal(v SourceDocument, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.ExternalId, bs[n:])
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.SourceUrl, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.PublishedAt, bs[n:])
	n += IngestStatusMUS.Marshal(v.Status, bs[n:])
	n += ord.String.Marshal(v.ErrorMessage, bs[n:])
	n += ord.String.Marshal(v.RawTranscript, bs[n:])
	n += RecapMUS.Marshal(v.Recap, bs[n:])
	n += varint.Int.Marshal(v.ChunkCount, bs[n:])
	n += varint.Int.Marshal(v.Version, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s sourceDocumentMUS) Unmarshal(bs []byte) (v SourceDocument, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.ExternalId, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SourceUrl, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PublishedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Status, n1, err = IngestStatusMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ErrorMessage, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.RawTranscript, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Recap, n1, err = RecapMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ChunkCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Version, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s sourceDocumentMUS) Size(v SourceDocument) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.ExternalId)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.SourceUrl)
	size += raw.TimeUnixMicro.Size(v.PublishedAt)
	size += IngestStatusMUS.Size(v.Status)
	size += ord.String.Size(v.ErrorMessage)
	size += ord.String.Size(v.RawTranscript)
	size += RecapMUS.Size(v.Recap)
	size += varint.Int.Size(v.ChunkCount)
	size += varint.Int.Size(v.Version)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s sourceDocumentMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = IngestStatusMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = RecapMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var DocumentChunkMUS = documentChunkMUS{}

type documentChunkMUS struct{}

func (s documentChunkMUS) Marshal(v DocumentChunk, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.DocumentId, bs[n:])
	n += varint.Int.Marshal(v.Version, bs[n:])
	n += varint.Int.Marshal(v.ChunkIndex, bs[n:])
	n += ord.String.Marshal(v.Contents, bs[n:])
	n += slicehf5w7fsWbFupn2EW8TqoCQΞΞ.Marshal(v.Vector, bs[n:])
	n += varint.Float64.Marshal(v.StartSeconds, bs[n:])
	n += varint.Float64.Marshal(v.EndSeconds, bs[n:])
	return n + ord.String.Marshal(v.SourceCategory, bs[n:])
}

func (s documentChunkMUS) Unmarshal(bs []byte) (v DocumentChunk, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.DocumentId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Version, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ChunkIndex, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Contents, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = slicehf5w7fsWbFupn2EW8TqoCQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.StartSeconds, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.EndSeconds, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SourceCategory, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s documentChunkMUS) Size(v DocumentChunk) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.DocumentId)
	size += varint.Int.Size(v.Version)
	size += varint.Int.Size(v.ChunkIndex)
	size += ord.String.Size(v.Contents)
	size += slicehf5w7fsWbFupn2EW8TqoCQΞΞ.Size(v.Vector)
	size += varint.Float64.Size(v.StartSeconds)
	size += varint.Float64.Size(v.EndSeconds)
	return size + ord.String.Size(v.SourceCategory)
}

func (s documentChunkMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicehf5w7fsWbFupn2EW8TqoCQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var DocumentVersionMUS = documentVersionMUS{}

type documentVersionMUS struct{}

func (s documentVersionMUS) Marshal(v DocumentVersion, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.DocumentId, bs[n:])
	n += varint.Int.Marshal(v.Version, bs[n:])
	n += RecapMUS.Marshal(v.Recap, bs[n:])
	n += ord.String.Marshal(v.RawTranscript, bs[n:])
	n += varint.Int.Marshal(v.ChunkCount, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.CreatedAt, bs[n:])
}

func (s documentVersionMUS) Unmarshal(bs []byte) (v DocumentVersion, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.DocumentId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Version, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Recap, n1, err = RecapMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.RawTranscript, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ChunkCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s documentVersionMUS) Size(v DocumentVersion) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.DocumentId)
	size += varint.Int.Size(v.Version)
	size += RecapMUS.Size(v.Recap)
	size += ord.String.Size(v.RawTranscript)
	size += varint.Int.Size(v.ChunkCount)
	return size + raw.TimeUnixMicro.Size(v.CreatedAt)
}

func (s documentVersionMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = RecapMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var CaptionSegmentMUS = captionSegmentMUS{}

type captionSegmentMUS struct{}

func (s captionSegmentMUS) Marshal(v CaptionSegment, bs []byte) (n int) {
	n = ord.String.Marshal(v.Text, bs)
	n += varint.Int64.Marshal(v.StartMillis, bs[n:])
	return n + varint.Int64.Marshal(v.DurationMillis, bs[n:])
}

func (s captionSegmentMUS) Unmarshal(bs []byte) (v CaptionSegment, n int, err error) {
	v.Text, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.StartMillis, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.DurationMillis, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s captionSegmentMUS) Size(v CaptionSegment) (size int) {
	size = ord.String.Size(v.Text)
	size += varint.Int64.Size(v.StartMillis)
	return size + varint.Int64.Size(v.DurationMillis)
}

func (s captionSegmentMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	return
}

var IngestStateMUS = ingestStateMUS{}

type ingestStateMUS struct{}

func (s ingestStateMUS) Marshal(v IngestState, bs []byte) (n int) {
	n = IDMUS.Marshal(v.DocumentId, bs)
	n += ord.String.Marshal(v.Step, bs[n:])
	n += ord.String.Marshal(v.Transcript, bs[n:])
	n += slice1HyWBZmogvWW8jxXΔVraCwΞΞ.Marshal(v.Segments, bs[n:])
	n += sliceΣnZVUVxppxgmaH2PUyifΔwΞΞ.Marshal(v.Chunks, bs[n:])
	n += RecapMUS.Marshal(v.Recap, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s ingestStateMUS) Unmarshal(bs []byte) (v IngestState, n int, err error) {
	v.DocumentId, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Step, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Transcript, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Segments, n1, err = slice1HyWBZmogvWW8jxXΔVraCwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Chunks, n1, err = sliceΣnZVUVxppxgmaH2PUyifΔwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Recap, n1, err = RecapMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s ingestStateMUS) Size(v IngestState) (size int) {
	size = IDMUS.Size(v.DocumentId)
	size += ord.String.Size(v.Step)
	size += ord.String.Size(v.Transcript)
	size += slice1HyWBZmogvWW8jxXΔVraCwΞΞ.Size(v.Segments)
	size += sliceΣnZVUVxppxgmaH2PUyifΔwΞΞ.Size(v.Chunks)
	size += RecapMUS.Size(v.Recap)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s ingestStateMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice1HyWBZmogvWW8jxXΔVraCwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceΣnZVUVxppxgmaH2PUyifΔwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = RecapMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
