// pkg/api/profiles_v1.go
package api

// KmerCountV1 is one k-mer and its count.
type KmerCountV1 struct {
	Kmer  string `json:"kmer"`
	Index uint64 `json:"index"`
	Count uint64 `json:"count"`
}

// ProfileV1 is the stable JSON/JSONL schema for one k-mer count profile.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ProfileV1 struct {
	SequenceID  string        `json:"sequence_id"`
	Description string        `json:"description,omitempty"`
	SourceFile  string        `json:"source_file,omitempty"`
	Alphabet    string        `json:"alphabet"`
	A           int           `json:"a"`
	K           int           `json:"k"`
	Length      int           `json:"length"`
	Windows     int           `json:"windows"`
	Total       uint64        `json:"total"`
	Records     int           `json:"records,omitempty"` // merged profiles only
	Counts      []KmerCountV1 `json:"counts"`
}
