package log

import "go.uber.org/zap"

const (
	FieldNameComponent = "component"
	FieldNameSize      = "size"
)

// FieldComponent returns a zap field with the toolkit component name.
func FieldComponent(component string) zap.Field {
	return zap.String(FieldNameComponent, component)
}

// FieldSize returns a zap field with an allocation size in bytes.
func FieldSize(size int) zap.Field {
	return zap.Int(FieldNameSize, size)
}
