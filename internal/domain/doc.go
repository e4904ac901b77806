// Package domain contains the core entities of the JobVerse backend: users,
// jobs, job applications, diagnostic tests, reservations, banners and health
// tips. Entities are plain documents; cross-entity links are identifier
// references, never materialized relations.
package domain
