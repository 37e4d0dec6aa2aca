// Copyright 2026 The Planetaria Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package geometry implements arcs on the unit sphere and the chains of arcs
that outline blocks and fields in a spherical 2D world.

An Arc is an immutable piece of a great or small circle. Arcs are built from
curve descriptors (a point plus a tangent) with Curve and Line, and adjacent
arcs are joined by corner arcs built with Corner. A Shape is an ordered chain
of edges and corners, and a Visitor walks along a Shape by surface distance,
crossing from arc to arc as it goes.

Every arc is evaluated at an extrusion: an angular offset along the arc's
normal that accounts for the radius of the object standing on it. Positive
extrusion is above the surface (the side the normal points to), negative
extrusion burrows below it.
*/
package geometry
