package errors

// Validation reports a source token that cannot be exported.
func Validation(message string) *Error {
	return New(CodeFailedPrecondition, message)
}

// Parse reports an import document that is absent or malformed.
func Parse(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// ParseWrap wraps a decoding failure as a Parse error.
func ParseWrap(err error, message string) *Error {
	return WrapWithCode(err, CodeInvalidArgument, message)
}

// Schema reports a set that would replace a nested record with plain data.
func Schema(field, typeName string) *Error {
	return Newf(CodeAborted, "field %q holds a %s record and cannot be overwritten with plain data", field, typeName).
		WithMeta("field", field).
		WithMeta("type_name", typeName)
}

// UnknownType reports a document node whose type tag has no registered record.
func UnknownType(typeName string) *Error {
	return Newf(CodeUnimplemented, "no record type registered for %q", typeName).
		WithMeta("type_name", typeName)
}

// ResolutionMiss describes a reference that did not resolve in the destination catalog.
func ResolutionMiss(tableName, name, id string) *Error {
	return Newf(CodeNotFound, "no %s entry matches %q", tableName, name).
		WithMeta("table", tableName).
		WithMeta("name", name).
		WithMeta("id", id)
}

// IsValidation checks if an error is an export validation failure
func IsValidation(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsParse checks if an error is an import parse failure
func IsParse(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsSchema checks if an error is a record schema violation
func IsSchema(err error) bool {
	return GetCode(err) == CodeAborted
}

// IsUnknownType checks if an error names an unregistered record type
func IsUnknownType(err error) bool {
	return GetCode(err) == CodeUnimplemented
}
