// Package reconcile adapts job application rows to the core reconcile engine.
//
// ApplicationAdapter normalizes Simplify.jobs export rows into
// models.Application, assigns the external identifier (the supplied id, or a
// "gen_" identifier derived from company, title, URL and applied date) and
// performs the store lookups and inserts the engine runs inside its
// transaction.
package reconcile
