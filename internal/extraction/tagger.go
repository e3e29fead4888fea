package extraction

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// Token is a word with its Penn Treebank part-of-speech tag.
type Token struct {
	Text string
	Tag  string
}

// Entity is a named entity found in text.
type Entity struct {
	Text  string
	Label string
}

// Tagger performs part-of-speech tagging and named-entity recognition.
type Tagger interface {
	Tag(text string) ([]Token, []Entity, error)
}

// nounTags are the Penn Treebank noun and proper-noun tags.
var nounTags = map[string]bool{
	"NN":   true,
	"NNS":  true,
	"NNP":  true,
	"NNPS": true,
}

// ProseTagger is a Tagger backed by the prose NLP library. The model is
// loaded once and shared by every Tag call.
type ProseTagger struct {
	model *prose.Model
}

// NewProseTagger loads prose's averaged perceptron tagger and entity model.
func NewProseTagger() (*ProseTagger, error) {
	doc, err := prose.NewDocument("", prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("failed to load prose model: %w", err)
	}
	return &ProseTagger{model: doc.Model}, nil
}

func (p *ProseTagger) document(text string) (*prose.Document, error) {
	return prose.NewDocument(text, prose.WithSegmentation(false), prose.UsingModel(p.model))
}

// Tag tags text with the loaded model.
func (p *ProseTagger) Tag(text string) ([]Token, []Entity, error) {
	doc, err := p.document(text)
	if err != nil {
		return nil, nil, err
	}

	docTokens := doc.Tokens()
	tokens := make([]Token, 0, len(docTokens))
	for _, tok := range docTokens {
		tokens = append(tokens, Token{Text: tok.Text, Tag: tok.Tag})
	}

	docEntities := doc.Entities()
	entities := make([]Entity, 0, len(docEntities))
	for _, ent := range docEntities {
		entities = append(entities, Entity{Text: ent.Text, Label: ent.Label})
	}
	return tokens, entities, nil
}
