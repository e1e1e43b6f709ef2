// export_test.go exposes the error chain helpers to the external test package.
package logger

var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)
