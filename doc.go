/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package arena runs a multi-provider LLM competition: one question goes to
every configured backend concurrently, the backends that answer become both
the competitors and the judging panel, each judge ranks all answers, and the
per-judge rankings are averaged into a single best-to-worst leaderboard.

The pipeline is built to degrade rather than fail. Providers without
credentials are skipped, slow or broken backends cost only their own slot, and
judges whose replies do not validate abstain from aggregation. The one fatal
condition is a provider family the gateway cannot dispatch, which is a
configuration bug rather than an environmental fault.

See the providers, gateway, fanout, and judging packages for the individual
stages; Runner wires them into a single Run call.
*/
package arena
