// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package model defines the core data structures for the application.
// This file provides fixed example instances: the sample brief offered by the
// "load sample" shortcut and a well-formed script used for documentation and
// tests.
package model

// SampleBrief returns the fixed example brief used to pre-fill the capture
// form. A new value is returned on every call so callers may modify their copy.
func SampleBrief() Brief {
	return Brief{
		CompanyName:        "FUZETECH MOBILE",
		ProductDescription: "Genuine phone spares, accessories, laptops, and expert repairs.",
		SellingPoints:      "Trust, speed, quality service, fast delivery anywhere.",
		TargetAudience:     "Tech-savvy individuals in Kenya, energetic and modern tone.",
		CallToAction:       "Call or WhatsApp us on 0712 516 112 or visit us in Kakamega Town.",
		Tagline:            "Innovating Laptops, Phones, and Phone Spares. Fuzetech hapa ndipo!",
		Duration:           Duration45,
	}
}

// GetExampleScript returns a complete script in the shape the model is asked
// to produce.
func GetExampleScript() *GeneratedScript {
	return &GeneratedScript{
		Title: "Fuzetech: Hapa Ndipo",
		Lines: []ScriptLine{
			{Kind: LineKindMusic, Content: "Upbeat Afro-pop beat fades in."},
			{Kind: LineKindSFX, Content: "Phone notification chime."},
			{Kind: LineKindNarrator, Content: "Cracked screen? Dead battery? Laptop acting up?"},
			{Kind: LineKindNarrator, Content: "Fuzetech Mobile has genuine spares, accessories and expert repairs, delivered fast anywhere."},
			{Kind: LineKindNarrator, Content: "Call or WhatsApp us on 0712 516 112 or visit us in Kakamega Town."},
			{Kind: LineKindMusic, Content: "Beat swells, then cuts."},
			{Kind: LineKindNarrator, Content: "Innovating Laptops, Phones, and Phone Spares. Fuzetech hapa ndipo!"},
		},
	}
}
