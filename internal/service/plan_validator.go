package service

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"inmo-assistant/internal/model"
	"inmo-assistant/internal/utils"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/plan.schema.json
var planSchemaJSON []byte

const planSchemaResource = "plan.schema.json"

// PlanValidator turns a decoded planner document into a canonical Plan.
// Shape checks come from the embedded JSON schema; value normalization is done here.
type PlanValidator struct {
	plan    *jsonschema.Schema
	filters *jsonschema.Schema
}

// NewPlanValidator compiles the embedded plan schema
func NewPlanValidator() (*PlanValidator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(planSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse plan schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(planSchemaResource, doc); err != nil {
		return nil, fmt.Errorf("add plan schema: %w", err)
	}

	plan, err := c.Compile(planSchemaResource)
	if err != nil {
		return nil, fmt.Errorf("compile plan schema: %w", err)
	}
	filters, err := c.Compile(planSchemaResource + "#/$defs/filters")
	if err != nil {
		return nil, fmt.Errorf("compile filters schema: %w", err)
	}

	return &PlanValidator{plan: plan, filters: filters}, nil
}

// Validate parses raw JSON and validates it. Unparsable input is a ValidationError.
func (v *PlanValidator) Validate(raw []byte) (*model.Plan, error) {
	doc, err := utils.DecodeJSONDocument(string(raw))
	if err != nil {
		return nil, &ValidationError{Reason: "not parsable JSON", Err: err}
	}
	return v.ValidateDocument(doc)
}

// ValidateDocument validates an already decoded JSON value (numbers as json.Number or float64).
// It never returns a partial plan.
func (v *PlanValidator) ValidateDocument(doc any) (*model.Plan, error) {
	if err := v.plan.Validate(doc); err != nil {
		return nil, &ValidationError{Reason: "schema mismatch", Err: err}
	}
	obj := doc.(map[string]any)

	plan := &model.Plan{
		Intent:      model.Intent(obj["intent"].(string)),
		ListingID:   normalizeListingID(obj["listing_id"]),
		NeedFields:  []string{},
		ResultCount: model.DefaultResultCount,
	}

	plan.Filters = normalizeFilters(obj["filters"])

	if raw, ok := obj["need_fields"].([]any); ok {
		names := make([]string, 0, len(raw))
		for _, item := range raw {
			names = append(names, item.(string))
		}
		plan.NeedFields = utils.NormalizeFieldNames(names)
	}

	if raw, ok := obj["result_count"]; ok && raw != nil {
		count, ok := wholeNumber(raw)
		if !ok || count < 1 {
			return nil, &ValidationError{Reason: fmt.Sprintf("result_count must be a positive integer, got %v", raw)}
		}
		plan.ResultCount = count
	}

	if raw, ok := obj["clarification"].(map[string]any); ok {
		questions := make([]string, 0)
		for _, q := range raw["questions"].([]any) {
			if text := strings.TrimSpace(q.(string)); text != "" {
				questions = append(questions, text)
			}
		}
		plan.Clarification = &model.Clarification{Questions: questions}
	}

	return plan, nil
}

// ValidateFilters normalizes a bare filters object, as accepted by the direct search API.
// A nil document yields all-null filters.
func (v *PlanValidator) ValidateFilters(doc any) (model.Filters, error) {
	if err := v.filters.Validate(doc); err != nil {
		return model.Filters{}, &ValidationError{Reason: "filters schema mismatch", Err: err}
	}
	return normalizeFilters(doc), nil
}

func normalizeFilters(doc any) model.Filters {
	var filters model.Filters
	obj, _ := doc.(map[string]any)
	if obj == nil {
		return filters
	}

	for _, name := range model.StringFilterFields {
		filters.SetText(name, normalizeText(obj[name]))
	}
	for _, name := range model.NumberFilterFields {
		filters.SetNumber(name, normalizeNumber(obj[name]))
	}
	for _, name := range model.FlagFilterFields {
		filters.SetFlag(name, normalizeFlag(obj[name]))
	}
	return filters
}

// normalizeText trims and lower-cases; empty means unconstrained
func normalizeText(value any) *string {
	s, ok := scalarString(value)
	if !ok {
		return nil
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil
	}
	return &s
}

// normalizeNumber passes finite numbers through and parses strings leniently
func normalizeNumber(value any) *float64 {
	switch v := value.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil
		}
		return utils.FiniteOrNil(f)
	case float64:
		return utils.FiniteOrNil(v)
	case int:
		return utils.FiniteOrNil(float64(v))
	case string:
		return utils.ParseFloat(v)
	}
	return nil
}

// normalizeFlag accepts booleans and Spanish/English truthy or falsy tokens
func normalizeFlag(value any) *bool {
	if b, ok := value.(bool); ok {
		return &b
	}
	s, ok := scalarString(value)
	if !ok {
		return nil
	}
	return utils.ParseBool(s)
}

func normalizeListingID(value any) *string {
	s, ok := scalarString(value)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		// canonical form, so 1243.0 reads as "1243"
		if i, err := v.Int64(); err == nil {
			return strconv.FormatInt(i, 10), true
		}
		if f, err := v.Float64(); err == nil {
			return strconv.FormatFloat(f, 'f', -1, 64), true
		}
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	}
	return "", false
}

func wholeNumber(value any) (int, bool) {
	var f float64
	switch v := value.(type) {
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = v
	case int:
		return v, true
	default:
		return 0, false
	}
	if f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
