package cmd

import "strings"

// boolShorthands are the value-less single-letter flags that may share a
// cluster with -p or -c, as in -wp 2 or -wc 'make'.
const boolShorthands = "wnVHh"

// normalizeArgs rewrites legacy and optional-value spellings into forms
// pflag accepts:
//
//	-nw          --new-window (reported as deprecated)
//	-p N         --new-pane=N
//	-pN          --new-pane=N
//	-wp N, -wpN  -w --new-pane=N
//	--new-pane N --new-pane=N
//
// pflag gives an optional-value shorthand its default even when digits are
// attached, so every pane count has to reach it in the long = form. The
// argument following -c/--command is passed through untouched.
func normalizeArgs(args []string) (out []string, deprecatedNW bool) {
	out = make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(out, args[i:]...), deprecatedNW
		case arg == "-nw":
			deprecatedNW = true
			out = append(out, "--new-window")
		case arg == "--command" || isCommandCluster(arg):
			out = append(out, arg)
			if i+1 < len(args) {
				i++
				out = append(out, args[i])
			}
		case arg == "--new-pane" && i+1 < len(args) && isPaneCount(args[i+1]):
			out = append(out, "--new-pane="+args[i+1])
			i++
		default:
			prefix, count, ok := paneCluster(arg)
			if !ok {
				out = append(out, arg)
				continue
			}
			if count == "" && i+1 < len(args) && isPaneCount(args[i+1]) {
				i++
				count = args[i]
			}
			if count == "" {
				out = append(out, arg)
				continue
			}
			if prefix != "" {
				out = append(out, "-"+prefix)
			}
			out = append(out, "--new-pane="+count)
		}
	}
	return out, deprecatedNW
}

// paneCluster splits a shorthand cluster containing p into the flags before
// it and an attached count: -p2 gives ("", "2"), -wp gives ("w", "").
func paneCluster(arg string) (prefix, count string, ok bool) {
	if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
		return "", "", false
	}
	prefix, count, found := strings.Cut(arg[1:], "p")
	if !found || strings.Trim(prefix, boolShorthands) != "" {
		return "", "", false
	}
	if count != "" && !isPaneCount(count) {
		return "", "", false
	}
	return prefix, count, true
}

// isCommandCluster reports whether arg is -c, alone or after value-less
// shorthands, so the next argument is its value.
func isCommandCluster(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' || !strings.HasSuffix(arg, "c") {
		return false
	}
	return strings.Trim(arg[1:len(arg)-1], boolShorthands) == ""
}

// isPaneCount reports whether s looks like a value for -p rather than the
// next flag.
func isPaneCount(s string) bool {
	return s != "" && strings.Trim(s, "0123456789") == ""
}
