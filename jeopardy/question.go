/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package jeopardy

import (
	"fmt"
	"strconv"
)

// PointStep is the value of the first row and the increment per row.
const PointStep = 100

// Largest boards a question file may describe. Past these the default
// layout has no room left for a clickable box.
const (
	MaxCategories = 12
	MaxQuestions  = 10
)

type Question struct {
	Category string
	Prompt   string
	Answer   string
	Points   int
}

type Category struct {
	Title     string
	Questions []Question
}

// QuestionSet is the content of one board, column by column.
type QuestionSet struct {
	Categories []Category
}

// NumQuestions returns the number of questions in each category.
func (qs QuestionSet) NumQuestions() int {
	if len(qs.Categories) == 0 {
		return 0
	}

	return len(qs.Categories[0].Questions)
}

// ReadQuestionSet reads NUM_CATEGORIES and NUM_QUESTIONS_PER_CATEGORY, in
// that order, followed by optional CATEGORY/QUESTION/ANSWER content. When
// the file stops after the two counts every title, prompt and answer is
// a numbered placeholder.
func ReadQuestionSet(p *Parser) (QuestionSet, error) {
	numCategories, err := expectCount(p, DirectiveNumCategories, "the number of categories for this board", MaxCategories)
	if err != nil {
		return QuestionSet{}, err
	}

	numQuestions, err := expectCount(p, DirectiveNumQuestions, "the number of questions for each category", MaxQuestions)
	if err != nil {
		return QuestionSet{}, err
	}

	placeholder := p.Done()

	qs := QuestionSet{Categories: make([]Category, 0, numCategories)}
	for c := 0; c < numCategories; c++ {
		category := Category{
			Title:     fmt.Sprintf("Category %d", c+1),
			Questions: make([]Question, 0, numQuestions),
		}

		if !placeholder {
			category.Title, err = p.Expect(DirectiveCategory, fmt.Sprintf("the title of category %d", c+1))
			if err != nil {
				return QuestionSet{}, err
			}
		}

		points := PointStep
		for q := 0; q < numQuestions; q++ {
			question := Question{
				Category: category.Title,
				Prompt:   fmt.Sprintf("Question %d", q+1),
				Answer:   fmt.Sprintf("Answer for question %d", q+1),
				Points:   points,
			}

			if !placeholder {
				question.Prompt, err = p.Expect(DirectiveQuestion, fmt.Sprintf("question %d of %q", q+1, category.Title))
				if err != nil {
					return QuestionSet{}, err
				}

				question.Answer, err = p.Expect(DirectiveAnswer, fmt.Sprintf("the answer to question %d of %q", q+1, category.Title))
				if err != nil {
					return QuestionSet{}, err
				}
			}

			category.Questions = append(category.Questions, question)
			points += PointStep
		}

		qs.Categories = append(qs.Categories, category)
	}

	if !p.Done() {
		return QuestionSet{}, &InvalidQuestionFileError{
			Directive: p.CurrentDirective(),
			Line:      p.Line(),
			Message:   fmt.Sprintf("unexpected %s after the last category", p.CurrentDirective()),
		}
	}

	return qs, nil
}

// LoadQuestionSet opens path and reads a QuestionSet from it.
func LoadQuestionSet(path string) (QuestionSet, error) {
	p, err := OpenParser(path)
	if err != nil {
		return QuestionSet{}, err
	}

	return ReadQuestionSet(p)
}

func expectCount(p *Parser, name, purpose string, limit int) (int, error) {
	line := p.Line()

	value, err := p.Expect(name, purpose)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < 1 || n > limit {
		return 0, &InvalidQuestionFileError{
			Directive: name,
			Line:      line,
			Message:   fmt.Sprintf("%s must be an integer from 1 to %d, got %q", name, limit, value),
		}
	}

	return n, nil
}
