// Package domain contains the entities shared across the discovery service:
// listings (events and places), the flattened Item read model used by the
// ranking code, and the engagement records (saves, follows, interactions) that
// personalize it. The types carry no storage or transport concerns.
package domain
