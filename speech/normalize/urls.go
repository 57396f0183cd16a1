package normalize

import (
	"strconv"
	"strings"
)

// domainSpoken reads a dotted host name: known labels through the term
// table, the final label through the TLD table, everything else
// through the generic English resolution, joined with "точка".
func (s *Set) domainSpoken(host string) string {
	labels := strings.Split(strings.ToLower(host), ".")
	words := make([]string, 0, len(labels))
	for i, label := range labels {
		if label == "" {
			continue
		}
		if i == len(labels)-1 {
			if tld, ok := tldNames[label]; ok {
				words = append(words, tld)
				continue
			}
		}
		words = append(words, s.englishToken(label))
	}
	return strings.Join(words, " точка ")
}

// urlSpoken converts a URL per the configured detail level.
func (s *Set) urlSpoken(raw string) string {
	rest := raw
	scheme := ""
	if i := strings.Index(rest, "://"); i > 0 {
		scheme = strings.ToLower(rest[:i])
		rest = rest[i+3:]
	}
	rest = strings.TrimPrefix(rest, "www.")

	host := rest
	path := ""
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		host = rest[:i]
		path = rest[i:]
	}
	port := ""
	if i := strings.IndexByte(host, ':'); i >= 0 {
		port = host[i+1:]
		host = host[:i]
	}

	switch s.opts.URLDetail {
	case URLDetailMinimal:
		return "ссылка"
	case URLDetailDomainOnly:
		return s.domainSpoken(host)
	}

	var words []string
	if scheme != "" {
		if name, ok := protocolNames[scheme]; ok {
			words = append(words, name)
		} else {
			words = append(words, s.englishToken(scheme))
		}
	}
	words = append(words, s.domainSpoken(host))
	if port != "" {
		if n, err := strconv.ParseInt(port, 10, 64); err == nil {
			words = append(words, "порт", NumberToWords(n, Masculine))
		}
	}
	if path != "" && path != "/" {
		words = append(words, s.pathSpoken(path))
	}
	return strings.Join(words, " ")
}

// emailSpoken reads "user@host.tld" with the local part resolved as an
// English token and "собака" for the separator.
func (s *Set) emailSpoken(addr string) string {
	local, host, found := strings.Cut(addr, "@")
	if !found {
		return addr
	}
	var words []string
	for _, part := range strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	}) {
		words = append(words, s.englishToken(part))
	}
	words = append(words, "собака", s.domainSpoken(host))
	return strings.Join(words, " ")
}

// ipSpoken reads a dotted IPv4 address, octets as whole numbers or
// digit by digit per the configured mode, with an optional port.
func (s *Set) ipSpoken(octets []string, port string) string {
	var words []string
	for i, oct := range octets {
		if i > 0 {
			words = append(words, "точка")
		}
		if s.opts.IPReadMode == IPReadDigits {
			words = append(words, DigitsToWords(oct))
			continue
		}
		n, err := strconv.ParseInt(oct, 10, 64)
		if err != nil {
			return strings.Join(octets, ".")
		}
		words = append(words, NumberToWords(n, Masculine))
	}
	if port != "" {
		if n, err := strconv.ParseInt(port, 10, 64); err == nil {
			words = append(words, "порт", NumberToWords(n, Masculine))
		}
	}
	return strings.Join(words, " ")
}

// pathSpoken reads a filesystem path segment by segment. Separators
// are spoken, dotted extensions become "точка <ext>", and the home,
// parent and hidden-file markers get fixed words.
func (s *Set) pathSpoken(path string) string {
	sep := "слэш"
	if strings.ContainsRune(path, '\\') {
		sep = "бэкслэш"
		path = strings.ReplaceAll(path, "\\", "/")
	}

	var words []string
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "":
			continue
		case "~":
			words = append(words, "домашняя директория")
			continue
		case "..":
			words = append(words, sep, "родительская директория")
			continue
		case ".":
			words = append(words, sep, "текущая директория")
			continue
		}
		hidden := false
		if strings.HasPrefix(seg, ".") {
			hidden = true
			seg = seg[1:]
		}
		words = append(words, sep)
		if hidden {
			words = append(words, "скрытый файл")
		}
		words = append(words, s.fileNameSpoken(seg))
	}
	// A leading "~" is not followed by a separator word twice.
	if len(words) > 0 && words[0] == "домашняя директория" {
		return strings.Join(words, " ")
	}
	return strings.TrimSpace(strings.Join(words, " "))
}

// fileNameSpoken reads "name.ext" as the name words plus
// "точка <ext>".
func (s *Set) fileNameSpoken(name string) string {
	base, ext, found := strings.Cut(name, ".")
	var words []string
	if base != "" {
		words = append(words, s.identifierSpoken(base))
	}
	if found && ext != "" {
		words = append(words, "точка", s.englishToken(ext))
	}
	return strings.Join(words, " ")
}
