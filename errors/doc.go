// Package errors provides the error taxonomy shared by every resolver of the
// catering client. A single AppError type carries an enumerated code, a
// human-readable message, structured details and the underlying cause.
package errors
