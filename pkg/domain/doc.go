/*
Package domain contains the core data model for a curriculum mapping workspace.

It defines the fixed six-domain registry, the mapping items a user records
against it, and the programme metadata that frames a mapping. This package is
kept pure and free of I/O or persistence concerns.

# Key Entities

  - Key: one of the six canonical domain keys (fixed set, fixed order).
  - Domain: a domain lens (key plus display prose).
  - MappingItem: a Module, Activity, or Assessment tagged against the domains.
  - ProgrammeDetails: free-text metadata describing the programme being mapped.
  - State: the full workspace snapshot (programme + ordered item list).
  - ExportPayload: the canonical on-disk shape for JSON export and import.
*/
package domain
