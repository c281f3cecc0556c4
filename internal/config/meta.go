package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	return exampleForStruct(reflect.TypeOf(Settings{}))
}

func exampleForStruct(t reflect.Type) map[string]any {
	example := make(map[string]any)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" || jsonTag == "-" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}
	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"save": "ctrl+s",
			"help": []string{"f1", "?"},
		}
	}

	if t.Kind() == reflect.Ptr {
		elemType := t.Elem()
		switch elemType.Kind() {
		case reflect.Struct:
			return exampleForStruct(elemType)
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "error_clear_delay":
				return DefaultErrorClearDelay
			case "max_log_files":
				return 1000
			case "link_expiry_minutes":
				return 15
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "api_addr":
			return DefaultAPIAddr
		case "api_url":
			return DefaultAPIURL
		case "database_driver":
			return "sqlite"
		case "database_dsn":
			return "~/.fieldnotes/fieldnotes.db"
		case "migrations_dir":
			return DefaultMigrationsDir
		case "s3_endpoint":
			return "http://localhost:9000"
		case "s3_region":
			return "us-east-1"
		case "ssh_addr":
			return "127.0.0.1:2222"
		case "ssh_host_key_path":
			return "~/.fieldnotes/ssh_host_ed25519"
		}
		return "example"
	}

	return nil
}
