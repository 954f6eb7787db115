package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_LowercasesAndSplits(t *testing.T) {
	tokens := Tokenize("Senior Go Developer")
	assert.Equal(t, []string{"senior", "go", "developer"}, tokens)
}

func TestTokenize_KeepsPunctuation(t *testing.T) {
	// Punctuation is intentionally not stripped; "node.js," stays one token.
	tokens := Tokenize("Node.js, React!")
	assert.Equal(t, []string{"node.js,", "react!"}, tokens)
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   \t\n"))
}

func TestTermFrequency_Counts(t *testing.T) {
	tf := TermFrequency("go go gadget go")
	assert.Equal(t, 3, tf["go"])
	assert.Equal(t, 1, tf["gadget"])
	assert.Len(t, tf, 2)
}

func TestTermFrequency_Empty(t *testing.T) {
	tf := TermFrequency("")
	assert.NotNil(t, tf)
	assert.Empty(t, tf)
}
