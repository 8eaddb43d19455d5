// Package validator provides a small, composable rule engine for validating
// user input together with the rule constructors the customer form needs:
// required and length checks, regular-expression allow-lists, digit counting
// and a case-insensitive injection deny-list.
//
// Each exported constructor returns a Rule: a boolean Check closure paired
// with translation-friendly error metadata. Rules are evaluated with Apply,
// which collects every failure, or ApplyFirst, which keeps only the first
// failure of each group so that ordering expresses precedence:
//
//	err := validator.ApplyFirst(
//	    []validator.Rule{
//	        validator.RequiredString("first_name", v).WithMessage("First name is required"),
//	        validator.MinLenTrimmed("first_name", v, 2),
//	        validator.NoDangerousPattern("first_name", v, nil),
//	    },
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    msg := verrs.First("first_name")
//	}
//
// # Deny-list
//
// PatternSet holds the dangerous-pattern deny-list. DefaultDangerousPatterns
// covers script, frame, object and embed tags, javascript: and data: URLs and
// inline event handlers. Sets can be extended at runtime with Add or from a
// YAML file with LoadPatternSet. A deny-list is inherently incomplete and is
// meant to sit behind the character allow-lists, not to replace them.
//
// The package holds no mutable global state apart from the read-only default
// PatternSet, so every helper is safe for concurrent use.
package validator
