// Package models defines the core domain models for the team randomizer.
//
// # Models
//
//   - Entrant: one named participant eligible for grouping
//   - Group: one team produced by a partitioning run
//   - SizingPolicy: the rule deciding how many teams or how large each team is
//
// # Design Principles
//
// 1. **Immutable entrants**: an Entrant is never renamed; remove and re-add instead
// 2. **Opaque identity**: IDs come from an identifier service, never from names
// 3. **No persistence**: models live for the lifetime of one session
// 4. **Disposable groups**: every partitioning run produces brand new Groups
package models
