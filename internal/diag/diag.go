// Package diag defines the unified failure value returned by every stage
// of the extraction pipeline, together with the closed code taxonomy and
// the recoverability classification derived from it.
package diag

import (
	"errors"
	"fmt"
)

// Code identifies a failure cause. The set is closed: callers branch on
// these values to decide between retry, configuration fixes, manual
// fallback, or abort.
type Code string

// Access failures: the input file itself is unusable.
const (
	CodeEmptyPath             Code = "EmptyPath"
	CodeMalformedPath         Code = "MalformedPath"
	CodeFileNotFound          Code = "FileNotFound"
	CodePathIsDirectory       Code = "PathIsDirectory"
	CodePermissionDenied      Code = "PermissionDenied"
	CodeFileTooLarge          Code = "FileTooLarge"
	CodeEmptyFile             Code = "EmptyFile"
	CodeBinaryContent         Code = "BinaryContent"
	CodeSpecificationTooShort Code = "SpecificationTooShort"
	CodeFileReadError         Code = "FileReadError"
)

// Configuration failures: retrying without changing an input cannot help.
const (
	CodePromptTooLarge       Code = "PromptTooLarge"
	CodeMissingAPIKey        Code = "MissingAPIKey"
	CodeAuthenticationFailed Code = "AuthenticationFailed"
	CodePermissionForbidden  Code = "PermissionForbidden"
)

// Transport failures: temporary, safe to retry unchanged.
const (
	CodeNetworkUnreachable Code = "NetworkUnreachable"
	CodeRequestTimeout     Code = "RequestTimeout"
	CodeRateLimited        Code = "RateLimited"
	CodeServiceUnavailable Code = "ServiceUnavailable"
)

// Response shape failures: the oracle envelope or its payload was not
// usable. A re-prompt may yield a well-formed answer, so these are
// classified temporary as well.
const (
	CodeEmptyCompletion Code = "EmptyCompletion"
	CodeMissingChoices  Code = "MissingChoices"
	CodeMissingContent  Code = "MissingContent"
	CodeNoJSONFound     Code = "NoJSONFound"
	CodeMalformedJSON   Code = "MalformedJSON"
	CodeIncompleteJSON  Code = "IncompleteJSON"
)

// Schema failures: the extracted catalog violates the structural contract.
// Retrying against the same oracle output cannot help.
const (
	CodeInvalidCatalogShape    Code = "InvalidCatalogShape"
	CodeMissingEndpointsField  Code = "MissingEndpointsField"
	CodeEndpointsNotArray      Code = "EndpointsNotArray"
	CodeNoEndpointsFound       Code = "NoEndpointsFound"
	CodeInvalidEndpointShape   Code = "InvalidEndpointShape"
	CodeMissingEndpointPath    Code = "MissingEndpointPath"
	CodeInvalidEndpointPath    Code = "InvalidEndpointPath"
	CodeMissingEndpointMethod  Code = "MissingEndpointMethod"
	CodeUnsupportedHttpMethod  Code = "UnsupportedHttpMethod"
	CodeMissingEndpointPurpose Code = "MissingEndpointPurpose"
	CodePurposeTooShort        Code = "PurposeTooShort"
	CodeMissingResponses       Code = "MissingResponses"
	CodeInvalidResponsesShape  Code = "InvalidResponsesShape"
	CodeMissingSuccessResponse Code = "MissingSuccessResponse"
	CodeInvalidParametersShape Code = "InvalidParametersShape"
	CodeInvalidSessionFlag     Code = "InvalidSessionFlag"
	CodeInvalidDataModels      Code = "InvalidDataModels"
	CodeInvalidCommonPatterns  Code = "InvalidCommonPatterns"
)

// Family classifies a diagnostic for the caller's next-action decision
type Family string

const (
	// FamilyCallerError marks programmer/caller mistakes; abort immediately.
	FamilyCallerError Family = "caller_error"
	// FamilyAccess marks unusable input files; a different file is needed.
	FamilyAccess Family = "access"
	// FamilyTemporary marks failures that may succeed unchanged on retry.
	FamilyTemporary Family = "temporary"
	// FamilyConfiguration marks failures requiring a changed input
	// (credentials, prompt size) before retrying can help.
	FamilyConfiguration Family = "configuration"
	// FamilySchema marks semantically wrong oracle output; manual fallback.
	FamilySchema Family = "schema"
)

// Action is the recommended next step for the caller
type Action string

const (
	ActionRetry            Action = "retry"
	ActionFixConfig        Action = "fix_config"
	ActionUseDifferentFile Action = "use_different_file"
	ActionManualFallback   Action = "manual_fallback"
	ActionAbort            Action = "abort"
)

// Metadata carries structured, kind-specific context for a diagnostic.
// Only the fields meaningful to the code are populated; the schema
// variants always carry EndpointIndex.
type Metadata struct {
	Path           string   `json:"path,omitempty"`
	SizeBytes      int64    `json:"sizeBytes,omitempty"`
	LimitBytes     int64    `json:"limitBytes,omitempty"`
	ContentLength  int      `json:"contentLength,omitempty"`
	MinLength      int      `json:"minLength,omitempty"`
	StatusCode     int      `json:"statusCode,omitempty"`
	EndpointIndex  *int     `json:"endpointIndex,omitempty"`
	Field          string   `json:"field,omitempty"`
	Value          string   `json:"value,omitempty"`
	AllowedMethods []string `json:"allowedMethods,omitempty"`
	ParseError     string   `json:"parseError,omitempty"`
}

// Diagnostic is the immutable failure value surfaced by the engine.
// It is created at the point of failure detection and consumed exactly
// once by the caller; the engine never retries on its own.
type Diagnostic struct {
	Code       Code     `json:"code"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
	Metadata   Metadata `json:"metadata,omitempty"`
}

// Error implements the error interface
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Code, d.Message)
}

var familyByCode = map[Code]Family{
	CodeEmptyPath:     FamilyCallerError,
	CodeMalformedPath: FamilyCallerError,

	CodeFileNotFound:          FamilyAccess,
	CodePathIsDirectory:       FamilyAccess,
	CodePermissionDenied:      FamilyAccess,
	CodeFileTooLarge:          FamilyAccess,
	CodeEmptyFile:             FamilyAccess,
	CodeBinaryContent:         FamilyAccess,
	CodeSpecificationTooShort: FamilyAccess,
	CodeFileReadError:         FamilyAccess,

	CodePromptTooLarge:       FamilyConfiguration,
	CodeMissingAPIKey:        FamilyConfiguration,
	CodeAuthenticationFailed: FamilyConfiguration,
	CodePermissionForbidden:  FamilyConfiguration,

	CodeNetworkUnreachable: FamilyTemporary,
	CodeRequestTimeout:     FamilyTemporary,
	CodeRateLimited:        FamilyTemporary,
	CodeServiceUnavailable: FamilyTemporary,

	CodeEmptyCompletion: FamilyTemporary,
	CodeMissingChoices:  FamilyTemporary,
	CodeMissingContent:  FamilyTemporary,
	CodeNoJSONFound:     FamilyTemporary,
	CodeMalformedJSON:   FamilyTemporary,
	CodeIncompleteJSON:  FamilyTemporary,

	CodeInvalidCatalogShape:    FamilySchema,
	CodeMissingEndpointsField:  FamilySchema,
	CodeEndpointsNotArray:      FamilySchema,
	CodeNoEndpointsFound:       FamilySchema,
	CodeInvalidEndpointShape:   FamilySchema,
	CodeMissingEndpointPath:    FamilySchema,
	CodeInvalidEndpointPath:    FamilySchema,
	CodeMissingEndpointMethod:  FamilySchema,
	CodeUnsupportedHttpMethod:  FamilySchema,
	CodeMissingEndpointPurpose: FamilySchema,
	CodePurposeTooShort:        FamilySchema,
	CodeMissingResponses:       FamilySchema,
	CodeInvalidResponsesShape:  FamilySchema,
	CodeMissingSuccessResponse: FamilySchema,
	CodeInvalidParametersShape: FamilySchema,
	CodeInvalidSessionFlag:     FamilySchema,
	CodeInvalidDataModels:      FamilySchema,
	CodeInvalidCommonPatterns:  FamilySchema,
}

var actionByFamily = map[Family]Action{
	FamilyCallerError:   ActionAbort,
	FamilyAccess:        ActionUseDifferentFile,
	FamilyTemporary:     ActionRetry,
	FamilyConfiguration: ActionFixConfig,
	FamilySchema:        ActionManualFallback,
}

// Family returns the classification family for the diagnostic's code
func (d *Diagnostic) Family() Family {
	if f, ok := familyByCode[d.Code]; ok {
		return f
	}
	return FamilyCallerError
}

// RecommendedAction returns the caller's suggested next step
func (d *Diagnostic) RecommendedAction() Action {
	return actionByFamily[d.Family()]
}

// IsRecoverable reports whether the caller has a meaningful alternative
// path (retry, fix config, manual entry). Only caller errors are
// unrecoverable.
func (d *Diagnostic) IsRecoverable() bool {
	return d.Family() != FamilyCallerError
}

// IsTemporary reports whether re-invoking the pipeline unchanged may
// succeed
func (d *Diagnostic) IsTemporary() bool {
	return d.Family() == FamilyTemporary
}

// As extracts a *Diagnostic from an error chain, or nil if absent
func As(err error) *Diagnostic {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d
	}
	return nil
}

// CodeOf returns the diagnostic code for err, or the empty code when err
// carries no Diagnostic
func CodeOf(err error) Code {
	if d := As(err); d != nil {
		return d.Code
	}
	return ""
}
