package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// parseFlags sets the fields of opts tagged by short and long from the
// arguments, and returns the remaining arguments. Supported field kinds are
// bool, string, *int and []string; a slice flag may be repeated.
func parseFlags(args []string, opts any) ([]string, error) {
	rest := make([]string, 0, len(args))
	val := reflect.ValueOf(opts).Elem()
	typ := val.Type()
	longToValue := map[string]reflect.Value{}
	shortToValue := map[string]reflect.Value{}
	for i, l := 0, val.NumField(); i < l; i++ {
		if flag, ok := typ.Field(i).Tag.Lookup("long"); ok {
			longToValue[flag] = val.Field(i)
		}
		if flag, ok := typ.Field(i).Tag.Lookup("short"); ok {
			shortToValue[flag] = val.Field(i)
		}
	}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		var (
			val       reflect.Value
			ok        bool
			shortopts string
		)
		if arg == "--" {
			rest = append(rest, args[i+1:]...)
			break
		}
		if strings.HasPrefix(arg, "--") {
			if val, ok = longToValue[arg[2:]]; !ok {
				if j := strings.IndexByte(arg, '='); j >= 0 {
					if val, ok = longToValue[arg[2:j]]; ok {
						if val.Kind() == reflect.Bool {
							return nil, fmt.Errorf("boolean flag `%s' cannot have an argument", arg[:j])
						}
						args[i] = arg[j+1:]
						arg = arg[:j]
						i--
					}
				}
				if !ok {
					return nil, fmt.Errorf("unknown flag `%s'", arg)
				}
			}
		} else if arg > "-" && arg[0] == '-' && !isNumberArg(arg) {
			if val, ok = shortToValue[arg[1:]]; !ok {
				shortopts = arg[1:]
				goto L
			}
		}
		if !ok {
			rest = append(rest, arg)
			continue
		}
	S:
		switch val.Kind() {
		case reflect.Bool:
			val.SetBool(true)
		case reflect.String:
			if i++; i >= len(args) {
				return nil, fmt.Errorf("expected argument for flag `%s'", arg)
			}
			val.SetString(args[i])
		case reflect.Ptr:
			if i++; i >= len(args) {
				return nil, fmt.Errorf("expected argument for flag `%s'", arg)
			}
			v, err := strconv.Atoi(args[i])
			if err != nil {
				return nil, fmt.Errorf("invalid argument for flag `%s': %w", arg, err)
			}
			val.Set(reflect.New(val.Type().Elem()))
			val.Elem().SetInt(int64(v))
		case reflect.Slice:
			if i++; i >= len(args) {
				return nil, fmt.Errorf("expected argument for flag `%s'", arg)
			}
			val.Set(reflect.Append(val, reflect.ValueOf(args[i])))
		}
	L:
		if shortopts != "" {
			opt := shortopts[:1]
			if val, ok = shortToValue[opt]; !ok {
				return nil, fmt.Errorf("unknown flag `-%s'", opt)
			}
			if val.Kind() != reflect.Bool {
				if shortopts[1:] != "" {
					args[i] = shortopts[1:]
					i--
				}
				shortopts = ""
			} else {
				shortopts = shortopts[1:]
			}
			arg = "-" + opt
			goto S
		}
	}
	return rest, nil
}

// isNumberArg reports whether a dash-prefixed argument is a negative number,
// so that an expression like -3 is not taken as flags.
func isNumberArg(arg string) bool {
	return len(arg) > 1 && ('0' <= arg[1] && arg[1] <= '9' || arg[1] == '.')
}

func formatFlags(opts any) string {
	val := reflect.ValueOf(opts).Elem()
	typ := val.Type()
	var sb strings.Builder
	sb.WriteString("Command Options:\n")
	for i, l := 0, typ.NumField(); i < l; i++ {
		tag := typ.Field(i).Tag
		if i == l-1 {
			sb.WriteString("\nHelp Option:\n")
		}
		sb.WriteString("  ")
		var short bool
		if flag, ok := tag.Lookup("short"); ok {
			sb.WriteString("-")
			sb.WriteString(flag)
			short = true
		} else {
			sb.WriteString("  ")
		}
		m := sb.Len()
		if flag, ok := tag.Lookup("long"); ok {
			if short {
				sb.WriteString(", ")
			} else {
				sb.WriteString("  ")
			}
			sb.WriteString("--")
			sb.WriteString(flag)
			switch val.Field(i).Kind() {
			case reflect.Bool:
				sb.WriteString(" ")
			case reflect.Slice:
				sb.WriteString(" file")
			default:
				sb.WriteString("=")
			}
		} else {
			sb.WriteString("=")
		}
		if pad := 24 - sb.Len() + m; pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		} else {
			sb.WriteString(" ")
		}
		sb.WriteString(tag.Get("description"))
		sb.WriteString("\n")
	}
	return sb.String()
}
