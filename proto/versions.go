/*
 * MIT License
 *
 * Copyright (c) 2026 ClipShare-Desktop Contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package proto

// registerV1 installs the v1 whitelist: GET_TEXT, SEND_TEXT, GET_FILE,
// SEND_FILE, GET_IMAGE, INFO. GET_FILE/SEND_FILE are single-file only at
// this version.
func registerV1(t table, b Bindings) {
	t[V1][GetText] = getTextHandler(b)
	t[V1][SendText] = sendTextHandler(b)
	t[V1][GetFile] = getFileHandler(b, V1)
	t[V1][SendFile] = sendFileHandler(b, V1)
	t[V1][GetImage] = imageHandler(b)
	t[V1][Info] = infoHandler(b)
}

// registerV2 keeps the v1 whitelist, with GET_FILE/SEND_FILE gaining
// multi-file semantics (handled inside their shared handlers via the
// version argument).
func registerV2(t table, b Bindings) {
	t[V2][GetText] = getTextHandler(b)
	t[V2][SendText] = sendTextHandler(b)
	t[V2][GetFile] = getFileHandler(b, V2)
	t[V2][SendFile] = sendFileHandler(b, V2)
	t[V2][GetImage] = imageHandler(b)
	t[V2][Info] = infoHandler(b)
}

// registerV3 adds GET_COPIED_IMAGE and GET_SCREENSHOT, and gives
// GET_FILE/SEND_FILE directory capability.
func registerV3(t table, b Bindings) {
	t[V3][GetText] = getTextHandler(b)
	t[V3][SendText] = sendTextHandler(b)
	t[V3][GetFile] = getFileHandler(b, V3)
	t[V3][SendFile] = sendFileHandler(b, V3)
	t[V3][GetImage] = imageHandler(b)
	t[V3][GetCopiedImage] = imageHandler(b)
	t[V3][GetScreenshot] = getScreenshotHandler(b)
	t[V3][Info] = infoHandler(b)
}
