/*
Package core holds definitions shared by all packages of the glosser module.

Errors

Errors returned by glosser packages carry an error code (see EMISSING,
EINVALID, EINTERNAL) and a message which may be shown to end users.
Clients extract both with Code(err) and UserMessage(err); the original error
is kept in the chain and is available through errors.Is and errors.As.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package core
