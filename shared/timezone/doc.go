// Package timezone centralizes time handling for the application.
// All timestamps written to or formatted for clients go through the
// configured application timezone so that hosts in different zones
// produce consistent values.
package timezone
