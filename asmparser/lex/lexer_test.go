package lex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	kindEOF uint = iota
	kindSpace
	kindWord
	kindNumber
)

var testRules = []Rule{
	Accept(Many(Unit[byte](' ')), kindSpace),
	Accept(SequenceNullableLast(Within('a', 'z'), Many(Within('a', 'z'))), kindWord),
	Accept(SequenceNullableLast(Within('0', '9'), Many(Within('0', '9'))), kindNumber),
	Reject(Unit[byte]('"'), "quotes are not allowed"),
}

func TestLexerCollect(t *testing.T) {
	tokens, err := NewLexer([]byte("ab 1"), kindEOF, testRules...).Collect()
	require.NoError(t, err)
	assert.Equal(t, []Token{
		{Kind: kindWord, Start: 0, End: 2},
		{Kind: kindSpace, Start: 2, End: 3},
		{Kind: kindNumber, Start: 3, End: 4},
		{Kind: kindEOF, Start: 4, End: 4},
	}, tokens)
}

func TestLexerEOFRepeats(t *testing.T) {
	lexer := NewLexer(nil, kindEOF, testRules...)
	for i := 0; i < 3; i++ {
		tok, err := lexer.Next()
		require.NoError(t, err)
		assert.Equal(t, Token{Kind: kindEOF}, tok)
	}
}

func TestLexerErrors(t *testing.T) {
	lexer := NewLexer([]byte("ab \"c"), kindEOF, testRules...)
	tokens, err := lexer.Collect()
	assert.Len(t, tokens, 2)

	var lexErr *Error
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, 3, lexErr.Offset)
	assert.Equal(t, "offset 3: quotes are not allowed", err.Error())
	assert.Equal(t, 3, lexer.Offset())

	_, err = NewLexer([]byte("ab?"), kindEOF, testRules...).Collect()
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, 2, lexErr.Offset)
	assert.Contains(t, err.Error(), "unexpected character '?'")
}
