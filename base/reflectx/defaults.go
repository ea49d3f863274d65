// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides reflection helpers for configuration structs.
package reflectx

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// NonPointerValue returns a non-pointer version of the given value,
// following pointers until it reaches one that is not a pointer
// or is nil.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

// SetFromDefaultTags sets the fields of the given struct pointer from
// their `default:` struct field tags. Struct fields without a tag are
// set recursively. Fields that cannot be set are reported in the
// returned error, and the rest are still set.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	val := NonPointerValue(reflect.ValueOf(obj))
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: %T is not a pointer to a struct", obj)
	}
	if !val.CanSet() {
		return fmt.Errorf("reflectx.SetFromDefaultTags: %T is not addressable", obj)
	}
	typ := val.Type()
	var errs []error
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok {
			if fv.Kind() == reflect.Struct {
				errs = append(errs, SetFromDefaultTags(fv.Addr().Interface()))
			}
			continue
		}
		if err := SetString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("field %s of %s: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// SetString sets the settable value from its string representation,
// using [encoding.TextUnmarshaler] when the value implements it.
func SetString(v reflect.Value, s string) error {
	if v.CanAddr() {
		if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return tu.UnmarshalText([]byte(s))
		}
	}
	if v.Type() == reflect.TypeFor[time.Duration]() {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(n)
	default:
		return fmt.Errorf("unsupported kind %s", v.Kind())
	}
	return nil
}
