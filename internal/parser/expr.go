package parser

import (
	"fmt"

	"github.com/cwbudde/matlangc/internal/token"
)

// exprParser implements the recursive-descent expression grammar
// (Expression → Term → Factor → Subscript) and rewrites each expression it
// consumes from infix to postfix in place, per spec.md §4.3. work is the
// line's token stream being matched against the current production rule;
// deque accumulates the postfix tokens for the expression segment
// currently being parsed.
type exprParser struct {
	work  []token.Token
	deque []token.Token
	line  int
}

func (p *exprParser) at(index int) (token.Token, bool) {
	if index < 0 || index >= len(p.work) {
		return token.Token{}, false
	}
	return p.work[index], true
}

func (p *exprParser) categoryAt(index int) (token.Category, bool) {
	tok, ok := p.at(index)
	if !ok {
		return "", false
	}
	return tok.Category, true
}

func (p *exprParser) synthetic(lexeme string, category token.Category) token.Token {
	return token.New(lexeme, category, p.line)
}

// consumeExpression handles one `Expression` element of a production
// rule's sequence: it brackets the infix expression starting at index with
// ExpressionBegin/ExpressionEnd sentinels and replaces it in place with its
// postfix rewrite, returning the index just past ExpressionEnd.
func (p *exprParser) consumeExpression(index int) (int, error) {
	p.work = insertAt(p.work, index, p.synthetic("EXPR_BEGIN", token.ExpressionBegin))
	index++
	exprStart := index
	p.deque = nil
	index, err := p.parseExpression(index)
	if err != nil {
		return index, err
	}
	p.work = insertAt(p.work, index, p.synthetic("EXPR_END", token.ExpressionEnd))
	exprEnd := index
	index = p.replaceInfixWithPostfix(exprStart, exprEnd, index)
	return index + 1, nil
}

// consumeInitializerList handles one `InitializerList` element: `{ Expr,
// Expr, ..., Expr }`, with each inner expression independently rewritten to
// postfix and bracketed, per spec.md §4.3.
func (p *exprParser) consumeInitializerList(index int) (int, error) {
	cat, ok := p.categoryAt(index)
	if !ok || cat != token.OpenCurlyBraces {
		return index, fmt.Errorf("initializer list: expected opening curly braces")
	}
	index++
	for {
		cat, ok := p.categoryAt(index)
		if !ok {
			return index, fmt.Errorf("initializer list: unexpected end of input")
		}
		if cat == token.CloseCurlyBraces {
			break
		}
		p.work = insertAt(p.work, index, p.synthetic("EXPR_BEGIN", token.ExpressionBegin))
		index++
		exprBegin := index
		p.deque = nil
		var err error
		index, err = p.parseExpression(index)
		if err != nil {
			return index, err
		}
		p.work = insertAt(p.work, index, p.synthetic("EXPR_END", token.ExpressionEnd))
		exprEnd := index
		index = p.replaceInfixWithPostfix(exprBegin, exprEnd, index)
		index++
		next, ok := p.categoryAt(index)
		if ok && next == token.Comma {
			index++
		} else if !ok || next != token.CloseCurlyBraces {
			return index, fmt.Errorf("initializer list: expected comma or closing curly braces")
		}
	}
	return index + 1, nil
}

// replaceInfixWithPostfix splices p.deque into p.work just before position
// origEnd (i.e. right after the infix expression, before its ExpressionEnd
// sentinel), then deletes the original infix tokens [origBegin, origEnd).
// currentIndex, which pointed at origEnd (the ExpressionEnd sentinel)
// before the splice, is adjusted for the size difference between the infix
// and postfix forms and returned.
func (p *exprParser) replaceInfixWithPostfix(origBegin, origEnd, currentIndex int) int {
	origSize := origEnd - origBegin
	p.work = insertAt(p.work, origEnd, p.deque...)
	p.work = removeRange(p.work, origBegin, origBegin+origSize)
	currentIndex += len(p.deque) - origSize
	p.deque = nil
	return currentIndex
}

// parseExpression implements `Expression → Term (('+' | '-') Term)*`,
// emitting postfix tokens into p.deque. Addition is straightforward
// postfix emission; subtraction is rewritten as `0 <term> - +` (chained for
// `a - b - c`), per spec.md §4.3.
func (p *exprParser) parseExpression(index int) (int, error) {
	index, err := p.parseTerm(index)
	if err != nil {
		return index, err
	}
	cat, ok := p.categoryAt(index)
	if !ok {
		return index, nil
	}
	switch cat {
	case token.AdditionOperator:
		index, err = p.parseExpression(index + 1)
		if err != nil {
			return index, err
		}
		p.deque = append(p.deque, p.synthetic("+", token.AdditionOperator))
	case token.SubtractionOperator:
		for {
			p.deque = append(p.deque, p.synthetic("0", token.Integer))
			index, err = p.parseTerm(index + 1)
			if err != nil {
				return index, err
			}
			p.deque = append(p.deque, p.synthetic("-", token.SubtractionOperator))
			p.deque = append(p.deque, p.synthetic("+", token.AdditionOperator))
			cat, ok = p.categoryAt(index)
			if !ok || cat != token.SubtractionOperator {
				break
			}
		}
		if ok && cat == token.AdditionOperator {
			// no-op: a '+' after the subtraction chain is handled by the
			// check immediately below.
		}
		cat, ok = p.categoryAt(index)
		if ok && cat == token.AdditionOperator {
			index, err = p.parseExpression(index + 1)
			if err != nil {
				return index, err
			}
			p.deque = append(p.deque, p.synthetic("+", token.AdditionOperator))
		}
	}
	return index, nil
}

// parseTerm implements `Term → Factor ('*' Factor)*`.
func (p *exprParser) parseTerm(index int) (int, error) {
	index, err := p.parseFactor(index)
	if err != nil {
		return index, err
	}
	cat, ok := p.categoryAt(index)
	if ok && cat == token.MultiplicationOperator {
		index, err = p.parseTerm(index + 1)
		if err != nil {
			return index, err
		}
		p.deque = append(p.deque, p.synthetic("*", token.MultiplicationOperator))
	}
	return index, nil
}

// parseFactor implements:
//
//	Factor → Integer | Real | Identifier Subscript?
//	       | '(' Expression ')'
//	       | tr '(' Expression ')'
//	       | sqrt '(' Expression ')'
//	       | choose '(' Expression ',' Expression ',' Expression ',' Expression ')'
func (p *exprParser) parseFactor(index int) (int, error) {
	tok, ok := p.at(index)
	if !ok {
		return index, fmt.Errorf("unexpected end of expression")
	}
	switch tok.Category {
	case token.Integer, token.Real:
		p.deque = append(p.deque, tok)
		return index + 1, nil
	case token.Identifier:
		p.deque = append(p.deque, tok)
		index++
		if cat, ok := p.categoryAt(index); ok && cat == token.OpenSquareBrackets {
			return p.parseSubscript(index)
		}
		return index, nil
	case token.OpenParenthesis:
		index, err := p.parseExpression(index + 1)
		if err != nil {
			return index, err
		}
		if cat, ok := p.categoryAt(index); !ok || cat != token.CloseParenthesis {
			return index, fmt.Errorf("factor: closing parenthesis expected")
		}
		return index + 1, nil
	case token.TrFunction, token.SqrtFunction:
		return p.parseUnaryFunc(index)
	case token.ChooseFunction:
		return p.parseChooseFunc(index)
	default:
		return index, fmt.Errorf("unexpected factor: %s", tok.Lexeme)
	}
}

// parseSubscript parses `[ Expression ]` or `[ Expression , Expression ]`
// following an identifier already pushed onto p.deque, lowering 1-based
// source indices to 0-based C indices and tagging the opening bracket with
// an `(int)` cast, per spec.md §4.3/§9.
func (p *exprParser) parseSubscript(index int) (int, error) {
	openTok, _ := p.at(index)
	openTok.Lexeme = openTok.Lexeme + "(int)"
	p.deque = append(p.deque, openTok)

	index, err := p.parseExpression(index + 1)
	if err != nil {
		return index, err
	}
	cat, ok := p.categoryAt(index)
	if !ok {
		return index, fmt.Errorf("subscript operator: unexpected end of input")
	}
	switch cat {
	case token.CloseSquareBrackets:
		closeTok, _ := p.at(index)
		p.deque = append(p.deque,
			p.synthetic("1", token.Integer),
			p.synthetic("-", token.SubtractionOperator),
			closeTok,
			p.synthetic("[(int)", token.OpenSquareBrackets),
			p.synthetic("0", token.Integer),
			p.synthetic("]", token.CloseSquareBrackets),
		)
		return index + 1, nil
	case token.Comma:
		p.deque = append(p.deque,
			p.synthetic("1", token.Integer),
			p.synthetic("-", token.SubtractionOperator),
			p.synthetic("]", token.CloseSquareBrackets),
			p.synthetic("[(int)", token.OpenSquareBrackets),
		)
		index, err = p.parseExpression(index + 1)
		if err != nil {
			return index, err
		}
		p.deque = append(p.deque,
			p.synthetic("1", token.Integer),
			p.synthetic("-", token.SubtractionOperator),
		)
		closeTok, ok := p.at(index)
		if !ok || closeTok.Category != token.CloseSquareBrackets {
			return index, fmt.Errorf("subscript operator: unexpected token")
		}
		p.deque = append(p.deque, closeTok)
		return index + 1, nil
	default:
		return index, fmt.Errorf("subscript operator: unexpected token")
	}
}

// parseUnaryFunc parses `tr '(' Expression ')'` or `sqrt '(' Expression
// ')'` — both single-argument built-ins with identical call shape.
func (p *exprParser) parseUnaryFunc(index int) (int, error) {
	nameTok, _ := p.at(index)
	if cat, ok := p.categoryAt(index + 1); !ok || cat != token.OpenParenthesis {
		return index, fmt.Errorf("%s function: expected opening parenthesis", nameTok.Lexeme)
	}
	openTok, _ := p.at(index + 1)
	p.deque = append(p.deque, nameTok, openTok)
	index, err := p.parseExpression(index + 2)
	if err != nil {
		return index, err
	}
	closeTok, ok := p.at(index)
	if !ok || closeTok.Category != token.CloseParenthesis {
		return index, fmt.Errorf("%s function: closing parenthesis expected", nameTok.Lexeme)
	}
	p.deque = append(p.deque, closeTok)
	return index + 1, nil
}

// parseChooseFunc parses `choose '(' Expression ',' Expression ','
// Expression ',' Expression ')'`.
func (p *exprParser) parseChooseFunc(index int) (int, error) {
	nameTok, _ := p.at(index)
	if cat, ok := p.categoryAt(index + 1); !ok || cat != token.OpenParenthesis {
		return index, fmt.Errorf("choose function: expected opening parenthesis")
	}
	openTok, _ := p.at(index + 1)
	p.deque = append(p.deque, nameTok, openTok)

	idx := index + 1
	var err error
	for i := 0; i < 3; i++ {
		idx, err = p.parseExpression(idx + 1)
		if err != nil {
			return idx, err
		}
		commaTok, ok := p.at(idx)
		if !ok || commaTok.Category != token.Comma {
			return idx, fmt.Errorf("choose function: expected 4 comma separated expressions")
		}
		p.deque = append(p.deque, commaTok)
	}
	idx, err = p.parseExpression(idx + 1)
	if err != nil {
		return idx, err
	}
	closeTok, ok := p.at(idx)
	if !ok || closeTok.Category != token.CloseParenthesis {
		return idx, fmt.Errorf("choose function: closing parenthesis expected")
	}
	p.deque = append(p.deque, closeTok)
	return idx + 1, nil
}
