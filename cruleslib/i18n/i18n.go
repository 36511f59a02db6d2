/*
Rulecheck - a static rule-checking engine for C sources
Copyright (C) 2023  Naive Systems Ltd.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Package i18n localizes the progress and summary messages printed
// while an analysis runs. Diagnostic messages themselves are not
// localized; they are part of the stable output contract.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var languageMap = map[string]language.Tag{"en": language.English, "zh": language.Chinese}

func init() {
	for _, entry := range []struct{ key, zh string }{
		{"Use %d CPU(s)", "使用 %d 个 CPU"},
		{"Start analyzing %s (%v/%v)", "开始分析 %s（%v/%v）"},
		{"Analysis of %s completed (%s, %v/%v) [%s]", "%s 分析完成（%s，%v/%v）[%s]"},
		{"Analysis completed: %d error(s), %d warning(s)", "分析完成：%d 个错误，%d 个警告"},
		{"Ctrl C pressed, stopping analysis", "收到 Ctrl C，停止分析"},
	} {
		if err := message.SetString(language.Chinese, entry.key, entry.zh); err != nil {
			panic(err)
		}
	}
}

func GetPrinter(lang string) *message.Printer {
	var langTag language.Tag
	if _, exist := languageMap[lang]; exist {
		langTag = languageMap[lang]
	} else {
		langTag = languageMap["en"]
	}
	return message.NewPrinter(langTag)
}
