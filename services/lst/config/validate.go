// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// exporters lists the accepted values of the exporter validation per kind.
var exporters = map[string][]string{
	"trace":  {"otlp", "stdout", "none"},
	"metric": {"prometheus", "stdout", "none"},
}

// configValidate is the validator instance for configuration structs.
// Initialized in init() with custom validators.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	_ = configValidate.RegisterValidation("exporter", validateExporter)
}

// validateExporter accepts the exporter names of the kind given as the
// tag parameter, e.g. `validate:"exporter=trace"`.
func validateExporter(fl validator.FieldLevel) bool {
	allowed, ok := exporters[fl.Param()]
	if !ok {
		return false
	}
	v := fl.Field().String()
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// Validate checks that the configuration is valid.
//
// Outputs:
//   - error: Non-nil if configuration is invalid. Lists every failing
//     field by its YAML path.
func (c Config) Validate() error {
	err := configValidate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "exporter":
		return fmt.Sprintf("%s: %q is not one of %s", field, fe.Value(), strings.Join(exporters[fe.Param()], ", "))
	case "required", "required_unless", "required_if":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s: %v is not one of %s", field, fe.Value(), fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s: %v fails %s=%s", field, fe.Value(), fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s: %v fails %s", field, fe.Value(), fe.Tag())
	}
}
