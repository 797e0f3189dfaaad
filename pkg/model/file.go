package model

// File describes a data file attached to a read (typically a FASTQ).
// The engine never interprets its contents.
type File struct {
	FileID   string `json:"file_id"`
	Filename string `json:"filename"`
	Filetype string `json:"filetype"`
	Filesize int64  `json:"filesize"`
	URL      string `json:"url"`
	URLType  string `json:"urltype"`
	MD5      string `json:"md5"`
}

// Onlist is the allowlist record attached to a region, e.g. a barcode
// whitelist. Same shape as File.
type Onlist File
