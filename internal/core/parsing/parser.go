package parsing

import (
	"regexp"
	"strings"

	"github.com/pasindulk/expense_chat_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ParseErrorKind classifies parse failures so the orchestrator can pick an
// appropriate reply.
type ParseErrorKind string

const (
	MalformedMessage  ParseErrorKind = "MALFORMED_MESSAGE"
	InvalidAmount     ParseErrorKind = "INVALID_AMOUNT"
	NonPositiveAmount ParseErrorKind = "NON_POSITIVE_AMOUNT"
)

// ParseError is a typed parse failure with a user-presentable reason.
type ParseError struct {
	Kind   ParseErrorKind
	Reason string
}

func (e *ParseError) Error() string {
	return e.Reason
}

func newParseError(kind ParseErrorKind, reason string) *ParseError {
	return &ParseError{Kind: kind, Reason: reason}
}

// Strategy is one named message grammar. Both production grammars are kept as
// distinct strategies; their delimiter and field-order rules must not be merged.
type Strategy interface {
	Name() string
	Parse(text string) (domain.ParsedExpense, error)
}

// DelimiterStrategy parses the comma-delimited grammar: "amount, category[, note]".
type DelimiterStrategy struct{}

func (DelimiterStrategy) Name() string { return "delimiter" }

func (DelimiterStrategy) Parse(text string) (domain.ParsedExpense, error) {
	fields := strings.Split(text, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) < 2 {
		return domain.ParsedExpense{}, newParseError(MalformedMessage, "expected at least amount and category")
	}

	amount, perr := parseAmount(fields[0])
	if perr != nil {
		return domain.ParsedExpense{}, perr
	}

	category := collapseWhitespace(fields[1])
	if category == "" {
		return domain.ParsedExpense{}, newParseError(MalformedMessage, "category must not be empty")
	}

	// Extra fields are folded into the note so user text is never dropped.
	note := ""
	if len(fields) > 2 {
		note = strings.Join(fields[2:], ", ")
	}

	return domain.ParsedExpense{Amount: amount, Category: category, Note: note}, nil
}

// atToken matches the first whole-word "at" separating the main clause from the
// trailing location clause.
var atToken = regexp.MustCompile(`\s+at\s+`)

// expensePrefix strips an optional case-insensitive "Expense:" literal.
var expensePrefix = regexp.MustCompile(`(?i)^expense:\s*`)

// NaturalStrategy parses the natural-language grammar:
// "[Expense:] amount category... [at location]".
type NaturalStrategy struct{}

func (NaturalStrategy) Name() string { return "natural" }

func (NaturalStrategy) Parse(text string) (domain.ParsedExpense, error) {
	clean := strings.TrimSpace(expensePrefix.ReplaceAllString(strings.TrimSpace(text), ""))

	main := clean
	note := ""
	if loc := atToken.FindStringIndex(clean); loc != nil {
		main = clean[:loc[0]]
		note = strings.TrimSpace(clean[loc[1]:])
	}

	tokens := strings.Fields(main)
	if len(tokens) < 2 {
		return domain.ParsedExpense{}, newParseError(MalformedMessage, "expected amount followed by category")
	}

	amount, perr := parseAmount(tokens[0])
	if perr != nil {
		return domain.ParsedExpense{}, perr
	}

	category := strings.Join(tokens[1:], " ")

	return domain.ParsedExpense{Amount: amount, Category: category, Note: note}, nil
}

// Parser dispatches between the two grammars: messages containing a comma use
// the delimiter grammar, everything else the natural-language grammar.
type Parser struct {
	delimiter Strategy
	natural   Strategy
}

// NewParser creates a Parser with both production grammar strategies.
func NewParser() *Parser {
	return &Parser{delimiter: DelimiterStrategy{}, natural: NaturalStrategy{}}
}

// Parse turns raw inbound text into a ParsedExpense. Failures are always a
// *ParseError. Parsing is pure; it never touches storage or network.
func (p *Parser) Parse(text string) (domain.ParsedExpense, error) {
	if strings.TrimSpace(text) == "" {
		return domain.ParsedExpense{}, newParseError(MalformedMessage, "message is empty")
	}
	if strings.Contains(text, ",") {
		return p.delimiter.Parse(text)
	}
	return p.natural.Parse(text)
}

func parseAmount(raw string) (decimal.Decimal, *ParseError) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, newParseError(InvalidAmount, "amount '"+raw+"' is not a number")
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, newParseError(NonPositiveAmount, "amount must be greater than 0")
	}
	return amount, nil
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
