package config

type Config struct {
	ImportDir string
	ExportDir string
	Stoplist  string
	Extractor ExtractorConfig
	Weighting WeightingConfig
}

type ExtractorConfig struct {
	Suffix   string // input document suffix, e.g. ".html"
	Stemming bool   // apply Porter stemming to extracted tokens
}

type WeightingConfig struct {
	Suffix    string // frequency file suffix, e.g. ".txt"
	OutputExt string // ranked weight file extension, e.g. ".wts"
	Strict    bool   // error out on malformed frequency lines instead of skipping
}
