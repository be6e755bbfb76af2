package deckfile

import (
	"errors"
	"fmt"
	"io"

	"github.com/anandita-3217/FlashcardApp-CLI/internal/domain"

	"gopkg.in/yaml.v3"
)

const invalidYAMLMessage = "Invalid YAML format. Please check the file content."

// decodeYAML decodes into a node tree so that mapping order survives decoding.
// Scalar answers are taken as written, so `2+2: 4` yields the answer "4".
func decodeYAML(r io.Reader) ([]domain.Flashcard, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("document is empty")
		}
		return nil, domain.NewMalformedFormatError(invalidYAMLMessage, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, domain.NewMalformedFormatError(invalidYAMLMessage, errors.New("expected a mapping at top level"))
	}

	deck := newOrderedDeck()
	for i := 0; i+1 < len(root.Content); i += 2 {
		question, err := scalarText(root.Content[i])
		if err != nil {
			return nil, domain.NewMalformedFormatError(invalidYAMLMessage, fmt.Errorf("line %d: question: %w", root.Content[i].Line, err))
		}
		answer, err := scalarText(root.Content[i+1])
		if err != nil {
			return nil, domain.NewMalformedFormatError(invalidYAMLMessage, fmt.Errorf("line %d: answer for %q: %w", root.Content[i+1].Line, question, err))
		}
		deck.put(question, answer)
	}
	return deck.cards, nil
}

func scalarText(n *yaml.Node) (string, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return "", errors.New("must be a plain value")
	}
	if n.Tag == "!!null" {
		return "", errors.New("must not be null")
	}
	return n.Value, nil
}
