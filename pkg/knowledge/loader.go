package knowledge

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type corpusFile struct {
	Articles []Article `yaml:"articles"`
}

// LoadCorpus decodes a YAML corpus document and validates every article.
func LoadCorpus(r io.Reader) ([]Article, error) {
	var doc corpusFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return []Article{}, nil
		}
		return nil, fmt.Errorf("decode corpus: %w", err)
	}

	for i, a := range doc.Articles {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("corpus entry %d: %w", i, err)
		}
	}
	if doc.Articles == nil {
		return []Article{}, nil
	}
	return doc.Articles, nil
}

// LoadCorpusFile reads a YAML corpus from disk.
func LoadCorpusFile(path string) ([]Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus %s: %w", path, err)
	}
	defer f.Close()
	return LoadCorpus(f)
}
