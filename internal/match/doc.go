// Package match provides the domain types for KHL match results and the
// score and side resolution logic shared by all extraction strategies.
//
// A Match records one played game from the point of view of the tracked team.
// KHL games cannot end level: a game tied after regulation is decided in
// overtime or a shootout, so a final score with equal goals only shows up in
// malformed input.
package match
