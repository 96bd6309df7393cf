// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package resolver

import "strings"

// Variants generates morphological spellings of a Hebrew search term so a
// term like "מקדם דחייה" also finds "מקדם דחיה" and "מקדם הדחייה". This is
// a hand-tuned suffix heuristic for one document family, not a stemmer:
//
//   - toggle between the ייה and יה suffix forms;
//   - for multi-word terms, add a variant with the last word truncated
//     before its final ה/יה/ייה, and one with the definite article ה
//     prefixed to the last word.
//
// The input term is always the first element. Duplicates are removed while
// preserving order.
func Variants(term string) []string {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	add := func(v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}

	add(term)
	if strings.Contains(term, "ייה") {
		add(strings.ReplaceAll(term, "ייה", "יה"))
	} else if strings.Contains(term, "יה") {
		add(strings.ReplaceAll(term, "יה", "ייה"))
	}

	words := strings.Fields(term)
	if len(words) > 1 {
		head := strings.Join(words[:len(words)-1], " ")
		last := words[len(words)-1]

		if stem := trimFinalSuffix(last); stem != "" && stem != last {
			add(head + " " + stem)
		}
		if !strings.HasPrefix(last, "ה") {
			add(head + " " + "ה" + last)
		}
	}

	return out
}

// trimFinalSuffix removes the longest of ייה/יה/ה from the end of a word.
func trimFinalSuffix(word string) string {
	for _, suffix := range []string{"ייה", "יה", "ה"} {
		if strings.HasSuffix(word, suffix) {
			return strings.TrimSuffix(word, suffix)
		}
	}
	return word
}
