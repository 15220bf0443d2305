package jeopardy

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeQuestionFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "questions.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestParserPeekThenConsume(t *testing.T) {
	p, err := NewParser(strings.NewReader("# board\n\nNUM_CATEGORIES = 3\nNUM_QUESTIONS_PER_CATEGORY=4\n"))
	require.NoError(t, err)

	assert.Equal(t, DirectiveNumCategories, p.CurrentDirective())
	assert.Equal(t, DirectiveNumCategories, p.CurrentDirective(), "peeking must not consume")
	assert.Equal(t, 3, p.Line())

	v, err := p.ConsumeValue()
	require.NoError(t, err)
	assert.Equal(t, "3", v)

	assert.Equal(t, DirectiveNumQuestions, p.CurrentDirective())
	v, err = p.ConsumeValue()
	require.NoError(t, err)
	assert.Equal(t, "4", v)

	assert.True(t, p.Done())
	assert.Equal(t, "", p.CurrentDirective())

	_, err = p.ConsumeValue()
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParserValueMayContainEquals(t *testing.T) {
	p, err := NewParser(strings.NewReader("QUESTION=What is 2+2=?\n"))
	require.NoError(t, err)

	v, err := p.ConsumeValue()
	require.NoError(t, err)
	assert.Equal(t, "What is 2+2=?", v)
}

func TestParserRejectsLineWithoutDirective(t *testing.T) {
	_, err := NewParser(strings.NewReader("NUM_CATEGORIES=2\njust some text\n"))

	var qerr *InvalidQuestionFileError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, 2, qerr.Line)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParserExpect(t *testing.T) {
	p, err := NewParser(strings.NewReader("CATEGORY=History\n"))
	require.NoError(t, err)

	_, err = p.Expect(DirectiveQuestion, "a question")
	var qerr *InvalidQuestionFileError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, DirectiveQuestion, qerr.Directive)
	assert.False(t, p.Done(), "a failed Expect must not consume")

	v, err := p.Expect(DirectiveCategory, "a category")
	require.NoError(t, err)
	assert.Equal(t, "History", v)
}

func TestOpenParserMissingFile(t *testing.T) {
	_, err := OpenParser(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParserSkipsByteOrderMark(t *testing.T) {
	p, err := NewParser(strings.NewReader("\ufeffNUM_CATEGORIES=2\nNUM_QUESTIONS_PER_CATEGORY=1\n"))
	require.NoError(t, err)

	assert.Equal(t, DirectiveNumCategories, p.CurrentDirective())

	qs, err := ReadQuestionSet(p)
	require.NoError(t, err)
	assert.Len(t, qs.Categories, 2)
}

func TestParserOverlongLine(t *testing.T) {
	content := "NUM_CATEGORIES=1\nQUESTION=" + strings.Repeat("x", 70*1024) + "\n"

	_, err := NewParser(strings.NewReader(content))

	var qerr *InvalidQuestionFileError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, 2, qerr.Line)
	assert.ErrorIs(t, err, ErrInvalidFormat)
	assert.ErrorContains(t, err, "token too long")
}
