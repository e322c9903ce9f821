/*
   Copyright 2026 The Taoslog Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package appender

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const dateFormat = "20060102"

// fileStamp is the (date, seq) pair a log filename decodes to. date is
// midnight of the file's calendar day in the local timezone; seq is the
// sequence suffix, 0 when absent.
type fileStamp struct {
	date time.Time
	seq  int
}

// less orders stamps chronologically: date first, then seq ascending.
func (a fileStamp) less(b fileStamp) bool {
	if !a.date.Equal(b.date) {
		return a.date.Before(b.date)
	}
	return a.seq < b.seq
}

// logFileName encodes the live filename for a (component, instance, date,
// seq) tuple. Sequence 0 is the unsuffixed form; compressed variants are
// never produced here, only recognized by the parser.
func logFileName(component string, instance uint8, date time.Time, seq int) string {
	if seq == 0 {
		return fmt.Sprintf("%s_%d_%s.log", component, instance, date.Format(dateFormat))
	}
	return fmt.Sprintf("%s_%d_%s.log.%d", component, instance, date.Format(dateFormat), seq)
}

// filenameParser recognizes the log filenames of one (component,
// instance) pair, live or gzip-archived. The pattern is anchored on the
// component prefix, so names with extra path components between the
// configured component and the instance never match.
type filenameParser struct {
	re *regexp.Regexp
}

func newFilenameParser(component string, instance uint8) *filenameParser {
	pattern := fmt.Sprintf(
		`^%s_%d_(?P<date>\d{8})\.log(\.(?P<index1>\d+)|\.gz|\.(?P<index2>\d+)\.gz)?$`,
		regexp.QuoteMeta(component), instance,
	)
	return &filenameParser{re: regexp.MustCompile(pattern)}
}

// parse decodes name into its (date, seq) stamp. The second return is
// false when the name does not belong to this parser's component and
// instance or the date stamp is malformed.
func (p *filenameParser) parse(name string) (fileStamp, bool) {
	m := p.re.FindStringSubmatch(name)
	if m == nil {
		return fileStamp{}, false
	}
	date, err := parseDate(m[p.re.SubexpIndex("date")])
	if err != nil {
		return fileStamp{}, false
	}
	seq := 0
	for _, group := range []string{"index1", "index2"} {
		if s := m[p.re.SubexpIndex(group)]; s != "" {
			if n, err := strconv.Atoi(s); err == nil {
				seq = n
			}
			break
		}
	}
	return fileStamp{date: date, seq: seq}, true
}

// parseDate interprets an eight-digit stamp as local midnight of that day.
func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrParseDate, s)
	}
	return t, nil
}
