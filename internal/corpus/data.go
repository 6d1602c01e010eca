package corpus

// builtin returns the license set bundled with the binary. Texts are the
// canonical bodies, trimmed to their distinctive sections for the larger
// licenses. A fuller corpus can be supplied via the SPDX license-list JSON.
func builtin() []Entry {
	return []Entry{
		{ID: "MIT", Name: "MIT License", Text: mitText},
		{ID: "ISC", Name: "ISC License", Text: iscText},
		{ID: "BSD-2-Clause", Name: "BSD 2-Clause \"Simplified\" License", Text: bsd2Text},
		{ID: "BSD-3-Clause", Name: "BSD 3-Clause \"New\" or \"Revised\" License", Text: bsd3Text},
		{ID: "Apache-2.0", Name: "Apache License 2.0", Text: apache2Text},
		{ID: "GPL-2.0", Name: "GNU General Public License v2.0", Text: gpl2Text},
		{ID: "GPL-3.0", Name: "GNU General Public License v3.0", Text: gpl3Text},
		{ID: "LGPL-3.0", Name: "GNU Lesser General Public License v3.0", Text: lgpl3Text},
		{ID: "AGPL-3.0", Name: "GNU Affero General Public License v3.0", Text: agpl3Text},
		{ID: "MPL-2.0", Name: "Mozilla Public License 2.0", Text: mpl2Text},
		{ID: "EPL-2.0", Name: "Eclipse Public License 2.0", Text: epl2Text},
		{ID: "Unlicense", Name: "The Unlicense", Text: unlicenseText},
		{ID: "CC0-1.0", Name: "Creative Commons Zero v1.0 Universal", Text: cc0Text},
		{ID: "Zlib", Name: "zlib License", Text: zlibText},
	}
}

const mitText = `MIT License

Copyright (c) <year> <copyright holders>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.`

const iscText = `ISC License

Copyright (c) <year> <copyright holders>

Permission to use, copy, modify, and/or distribute this software for any
purpose with or without fee is hereby granted, provided that the above
copyright notice and this permission notice appear in all copies.

THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
PERFORMANCE OF THIS SOFTWARE.`

const bsd2Text = `BSD 2-Clause License

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice,
this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
POSSIBILITY OF SUCH DAMAGE.`

const bsd3Text = `BSD 3-Clause License

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice,
this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its contributors
may be used to endorse or promote products derived from this software without
specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
POSSIBILITY OF SUCH DAMAGE.`

const apache2Text = `Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.

Apache License, Version 2.0, January 2004. Terms and conditions for use,
reproduction, and distribution.

"License" shall mean the terms and conditions for use, reproduction, and
distribution as defined by Sections 1 through 9 of this document. "Licensor"
shall mean the copyright owner or entity authorized by the copyright owner
that is granting the License. "Work" shall mean the work of authorship,
whether in Source or Object form, made available under the License.

Grant of Copyright License. Subject to the terms and conditions of this
License, each Contributor hereby grants to You a perpetual, worldwide,
non-exclusive, no-charge, royalty-free, irrevocable copyright license to
reproduce, prepare Derivative Works of, publicly display, publicly perform,
sublicense, and distribute the Work and such Derivative Works in Source or
Object form.

Grant of Patent License. Subject to the terms and conditions of this License,
each Contributor hereby grants to You a perpetual, worldwide, non-exclusive,
no-charge, royalty-free, irrevocable patent license to make, have made, use,
offer to sell, sell, import, and otherwise transfer the Work.

Redistribution. You may reproduce and distribute copies of the Work or
Derivative Works thereof in any medium, with or without modifications,
provided that You give any other recipients of the Work a copy of this
License and You cause any modified files to carry prominent notices stating
that You changed the files.

Disclaimer of Warranty. Unless required by applicable law or agreed to in
writing, Licensor provides the Work on an "AS IS" BASIS, WITHOUT WARRANTIES
OR CONDITIONS OF ANY KIND. Limitation of Liability. In no event and under no
legal theory shall any Contributor be liable to You for damages.`

const gpl2Text = `This program is free software; you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation; either version 2 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License along
with this program; if not, write to the Free Software Foundation, Inc.

GNU GENERAL PUBLIC LICENSE, Version 2, June 1991. The licenses for most
software are designed to take away your freedom to share and change it. By
contrast, the GNU General Public License is intended to guarantee your
freedom to share and change free software, to make sure the software is free
for all its users. When we speak of free software, we are referring to
freedom, not price. Our General Public Licenses are designed to make sure
that you have the freedom to distribute copies of free software, that you
receive source code or can get it if you want it, that you can change the
software or use pieces of it in new free programs. Each licensee is addressed
as "you". Activities other than copying, distribution and modification are
not covered by this License; they are outside its scope. You may copy and
distribute verbatim copies of the Program's source code as you receive it,
in any medium, provided that you conspicuously and appropriately publish on
each copy an appropriate copyright notice and disclaimer of warranty.`

const gpl3Text = `This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see the GNU licenses page.

GNU GENERAL PUBLIC LICENSE, Version 3, 29 June 2007. The GNU General Public
License is a free, copyleft license for software and other kinds of works.
The licenses for most software and other practical works are designed to take
away your freedom to share and change the works. By contrast, the GNU General
Public License is intended to guarantee your freedom to share and change all
versions of a program, to make sure it remains free software for all its
users. To protect your rights, we need to prevent others from denying you
these rights or asking you to surrender the rights. You may convey verbatim
copies of the Program's source code as you receive it, in any medium,
provided that you conspicuously and appropriately publish on each copy an
appropriate copyright notice. Each licensee is addressed as "you". This
License explicitly affirms your unlimited permission to run the unmodified
Program. There is no warranty for this free software.`

const lgpl3Text = `This library is free software; you can redistribute it and/or modify it
under the terms of the GNU Lesser General Public License as published by the
Free Software Foundation; either version 3 of the License, or (at your
option) any later version.

This library is distributed in the hope that it will be useful, but WITHOUT
ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
FITNESS FOR A PARTICULAR PURPOSE. See the GNU Lesser General Public License
for more details.

GNU LESSER GENERAL PUBLIC LICENSE, Version 3, 29 June 2007. This version of
the GNU Lesser General Public License incorporates the terms and conditions
of version 3 of the GNU General Public License, supplemented by the
additional permissions listed below. You may convey a covered work under
sections 3 and 4 of this License without being bound by section 3 of the GNU
GPL. The object code form of an Application may incorporate material from a
header file that is part of the Library.`

const agpl3Text = `GNU AFFERO GENERAL PUBLIC LICENSE, Version 3, 19 November 2007. The GNU
Affero General Public License is a free, copyleft license for software and
other kinds of works, specifically designed to ensure cooperation with the
community in the case of network server software. The licenses for most
software and other practical works are designed to take away your freedom
to share and change the works; by contrast, this license is intended to
guarantee your freedom to share and change all versions of a program.
Notwithstanding any other provision of this License, if you modify the
Program, your modified version must prominently offer all users
interacting with it remotely through a computer network an opportunity to
receive the Corresponding Source of your version.

This program is free software: you can redistribute it and/or modify it
under the terms of the GNU Affero General Public License as published by the
Free Software Foundation, either version 3 of the License, or (at your
option) any later version. This program is distributed in the hope that it
will be useful, but WITHOUT ANY WARRANTY; without even the implied warranty
of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU Affero
General Public License for more details.`

const mpl2Text = `Mozilla Public License Version 2.0

This Source Code Form is subject to the terms of the Mozilla Public License,
v. 2.0. If a copy of the MPL was not distributed with this file, You can
obtain one at the Mozilla website.

"Covered Software" means Source Code Form to which the initial Contributor
has attached the notice, the Executable Form of such Source Code Form, and
Modifications of such Source Code Form, in each case including portions
thereof. Each Contributor hereby grants You a world-wide, royalty-free,
non-exclusive license under intellectual property rights (other than patent
or trademark) to use, reproduce, make available, modify, display, perform,
distribute, and otherwise exploit its Contributions. All distribution of
Covered Software in Source Code Form, including any Modifications that You
create, must be under the terms of this License. You must inform recipients
that the Source Code Form of the Covered Software is governed by the terms
of this License. Covered Software is provided under this License on an "as
is" basis, without warranty of any kind, either expressed, implied, or
statutory. Under no circumstances and under no legal theory, whether tort,
contract, or otherwise, shall any Contributor be liable to You for any
direct, indirect, special, incidental, or consequential damages.`

const epl2Text = `Eclipse Public License - v 2.0

THE ACCOMPANYING PROGRAM IS PROVIDED UNDER THE TERMS OF THIS ECLIPSE PUBLIC
LICENSE ("AGREEMENT"). ANY USE, REPRODUCTION OR DISTRIBUTION OF THE PROGRAM
CONSTITUTES RECIPIENT'S ACCEPTANCE OF THIS AGREEMENT.

"Contributor" means any person or entity that Distributes the Program.
"Program" means the Contributions Distributed in accordance with this
Agreement. Subject to the terms of this Agreement, each Contributor hereby
grants Recipient a non-exclusive, worldwide, royalty-free copyright license
to reproduce, prepare Derivative Works of, publicly display, publicly
perform, Distribute and sublicense the Contribution of such Contributor, if
any, and such Derivative Works. A Contributor may choose to Distribute the
Program in Object code form under its own license agreement, provided that
it complies with the terms and conditions of this Agreement. EXCEPT AS
EXPRESSLY SET FORTH IN THIS AGREEMENT, THE PROGRAM IS PROVIDED ON AN "AS IS"
BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND. EXCEPT AS EXPRESSLY SET
FORTH IN THIS AGREEMENT, NEITHER RECIPIENT NOR ANY CONTRIBUTORS SHALL HAVE
ANY LIABILITY FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
CONSEQUENTIAL DAMAGES.`

const unlicenseText = `This is free and unencumbered software released into the public domain.

Anyone is free to copy, modify, publish, use, compile, sell, or distribute
this software, either in source code form or as a compiled binary, for any
purpose, commercial or non-commercial, and by any means.

In jurisdictions that recognize copyright laws, the author or authors of
this software dedicate any and all copyright interest in the software to the
public domain. We make this dedication for the benefit of the public at
large and to the detriment of our heirs and successors. We intend this
dedication to be an overt act of relinquishment in perpetuity of all present
and future rights to this software under copyright law.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN
ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.`

const cc0Text = `Creative Commons CC0 1.0 Universal

The person who associated a work with this deed has dedicated the work to
the public domain by waiving all of his or her rights to the work worldwide
under copyright law, including all related and neighboring rights, to the
extent allowed by law. You can copy, modify, distribute and perform the
work, even for commercial purposes, all without asking permission.

Affirmer hereby overtly, fully, permanently, irrevocably and unconditionally
waives, abandons, and surrenders all of Affirmer's Copyright and Related
Rights and associated claims and causes of action, whether now known or
unknown, in the Work. Affirmer offers the Work as-is and makes no
representations or warranties of any kind concerning the Work, express,
implied, statutory or otherwise, including without limitation warranties of
title, merchantability, fitness for a particular purpose, non infringement,
or the absence of latent or other defects, accuracy, or the present or
absence of errors, whether or not discoverable, all to the greatest extent
permissible under applicable law.`

const zlibText = `This software is provided 'as-is', without any express or implied warranty.
In no event will the authors be held liable for any damages arising from the
use of this software.

Permission is granted to anyone to use this software for any purpose,
including commercial applications, and to alter it and redistribute it
freely, subject to the following restrictions:

1. The origin of this software must not be misrepresented; you must not
claim that you wrote the original software. If you use this software in a
product, an acknowledgment in the product documentation would be appreciated
but is not required.

2. Altered source versions must be plainly marked as such, and must not be
misrepresented as being the original software.

3. This notice may not be removed or altered from any source distribution.`
